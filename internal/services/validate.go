package services

import (
	"encoding/json"
	"strings"

	"github.com/sdejt/planaula-backend/internal/pkg/apierr"
	"github.com/sdejt/planaula-backend/internal/types"
)

var planColumnNames = []string{
	"tempo", "funcao_didatica", "actividade_professor", "actividade_aluno", "metodos", "meios",
}

// ValidatePlan enforces the plan schema and cross-field invariants on the
// extracted object. Deviations are rejected, never repaired.
func ValidatePlan(obj map[string]any) (*types.Plan, error) {
	raw, err := json.Marshal(obj)
	if err != nil {
		return nil, apierr.New(apierr.KindSchemaViolation, err)
	}
	var plan types.Plan
	if err := json.Unmarshal(raw, &plan); err != nil {
		return nil, apierr.New(apierr.KindSchemaViolation, err)
	}

	general := plan.ObjectiveGeneral.Items()
	if len(general) == 0 {
		return nil, apierr.Newf(apierr.KindSchemaViolation, "objetivo_geral is empty")
	}
	for _, item := range general {
		if strings.TrimSpace(item) == "" {
			return nil, apierr.Newf(apierr.KindSchemaViolation, "objetivo_geral contains an empty entry")
		}
	}

	if len(plan.ObjectiveSpecific) == 0 {
		return nil, apierr.Newf(apierr.KindSchemaViolation, "objetivos_especificos is empty")
	}
	for _, item := range plan.ObjectiveSpecific {
		if strings.TrimSpace(item) == "" {
			return nil, apierr.Newf(apierr.KindSchemaViolation, "objetivos_especificos contains an empty entry")
		}
	}

	if len(plan.Table) != len(types.DidacticFunctions) {
		return nil, apierr.Newf(apierr.KindSchemaViolation, "tabela must have exactly %d rows, got %d", len(types.DidacticFunctions), len(plan.Table))
	}
	for i, row := range plan.Table {
		if row.DidacticFunc != types.DidacticFunctions[i] {
			return nil, apierr.Newf(apierr.KindSchemaViolation, "row %d: funcao_didatica must be %q, got %q", i+1, types.DidacticFunctions[i], row.DidacticFunc)
		}
		for j, cell := range row.Cells() {
			if strings.TrimSpace(cell) == "" {
				return nil, apierr.Newf(apierr.KindSchemaViolation, "row %d: column %q is empty", i+1, planColumnNames[j])
			}
		}
	}

	return &plan, nil
}
