package types

import (
	"encoding/json"
	"fmt"
)

// DidacticFunctions is the required content of the funcao_didatica column, in
// row order. Case-sensitive.
var DidacticFunctions = []string{
	"Introdução e Motivação",
	"Mediação e Assimilação",
	"Domínio e Consolidação",
	"Controlo e Avaliação",
}

// ObjectiveGeneral is a sum type at the model boundary: the generator may
// return objetivo_geral as a single string or as a list of strings.
type ObjectiveGeneral struct {
	Single string
	Multi  []string
}

func (o *ObjectiveGeneral) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Single = s
		o.Multi = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		o.Single = ""
		o.Multi = list
		return nil
	}
	return fmt.Errorf("objetivo_geral must be a string or a list of strings")
}

func (o ObjectiveGeneral) MarshalJSON() ([]byte, error) {
	if o.Multi != nil {
		return json.Marshal(o.Multi)
	}
	return json.Marshal(o.Single)
}

// Items normalizes the sum type into an ordered list.
func (o ObjectiveGeneral) Items() []string {
	if o.Multi != nil {
		return o.Multi
	}
	return []string{o.Single}
}

// IsList reports whether the generator returned a list rather than a single string.
func (o ObjectiveGeneral) IsList() bool { return o.Multi != nil }

// PlanRow is one row of the lesson table, in fixed column order.
type PlanRow struct {
	Time            string `json:"tempo"`
	DidacticFunc    string `json:"funcao_didatica"`
	TeacherActivity string `json:"actividade_professor"`
	StudentActivity string `json:"actividade_aluno"`
	Methods         string `json:"metodos"`
	Media           string `json:"meios"`
}

// UnmarshalJSON accepts a row either as an object keyed by column name or as
// a positional 6-tuple, which are the two shapes generators produce.
func (r *PlanRow) UnmarshalJSON(data []byte) error {
	type rowAlias PlanRow
	var obj rowAlias
	if err := json.Unmarshal(data, &obj); err == nil {
		*r = PlanRow(obj)
		return nil
	}
	var tuple []string
	if err := json.Unmarshal(data, &tuple); err != nil {
		return fmt.Errorf("table row must be an object or a list of strings")
	}
	if len(tuple) != 6 {
		return fmt.Errorf("table row must have exactly 6 columns, got %d", len(tuple))
	}
	r.Time, r.DidacticFunc, r.TeacherActivity = tuple[0], tuple[1], tuple[2]
	r.StudentActivity, r.Methods, r.Media = tuple[3], tuple[4], tuple[5]
	return nil
}

// Cells returns the row in column order.
func (r PlanRow) Cells() [6]string {
	return [6]string{r.Time, r.DidacticFunc, r.TeacherActivity, r.StudentActivity, r.Methods, r.Media}
}

// Plan is a validated generator output. It is derived, never mutated.
type Plan struct {
	ObjectiveGeneral  ObjectiveGeneral `json:"objetivo_geral"`
	ObjectiveSpecific []string         `json:"objetivos_especificos"`
	Table             []PlanRow        `json:"tabela"`
}
