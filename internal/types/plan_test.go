package types

import (
	"encoding/json"
	"testing"
)

func TestObjectiveGeneralAcceptsString(t *testing.T) {
	var o ObjectiveGeneral
	if err := json.Unmarshal([]byte(`"ler e escrever"`), &o); err != nil {
		t.Fatalf("unmarshal string: %v", err)
	}
	if o.IsList() {
		t.Fatalf("expected single form")
	}
	items := o.Items()
	if len(items) != 1 || items[0] != "ler e escrever" {
		t.Fatalf("Items: got %v", items)
	}
}

func TestObjectiveGeneralAcceptsList(t *testing.T) {
	var o ObjectiveGeneral
	if err := json.Unmarshal([]byte(`["ler", "escrever"]`), &o); err != nil {
		t.Fatalf("unmarshal list: %v", err)
	}
	if !o.IsList() {
		t.Fatalf("expected list form")
	}
	items := o.Items()
	if len(items) != 2 || items[0] != "ler" || items[1] != "escrever" {
		t.Fatalf("Items: got %v", items)
	}
}

func TestObjectiveGeneralRejectsOtherShapes(t *testing.T) {
	var o ObjectiveGeneral
	if err := json.Unmarshal([]byte(`{"a": 1}`), &o); err == nil {
		t.Fatalf("expected error for object form")
	}
	if err := json.Unmarshal([]byte(`42`), &o); err == nil {
		t.Fatalf("expected error for number form")
	}
}

func TestPlanRowAcceptsObjectAndTuple(t *testing.T) {
	objectForm := `{"tempo":"5","funcao_didatica":"Introdução e Motivação","actividade_professor":"a","actividade_aluno":"b","metodos":"c","meios":"d"}`
	tupleForm := `["5","Introdução e Motivação","a","b","c","d"]`

	var fromObject, fromTuple PlanRow
	if err := json.Unmarshal([]byte(objectForm), &fromObject); err != nil {
		t.Fatalf("unmarshal object row: %v", err)
	}
	if err := json.Unmarshal([]byte(tupleForm), &fromTuple); err != nil {
		t.Fatalf("unmarshal tuple row: %v", err)
	}
	if fromObject != fromTuple {
		t.Fatalf("object and tuple forms should decode equally: %+v != %+v", fromObject, fromTuple)
	}
	cells := fromObject.Cells()
	if cells[1] != "Introdução e Motivação" || cells[5] != "d" {
		t.Fatalf("Cells order wrong: %v", cells)
	}
}

func TestPlanRowRejectsShortTuple(t *testing.T) {
	var row PlanRow
	if err := json.Unmarshal([]byte(`["5","x","a","b","c"]`), &row); err == nil {
		t.Fatalf("expected error for 5-column tuple")
	}
}
