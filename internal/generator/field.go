package generator

import (
	"fmt"
	"time"

	"worksim.dev/worksim/common/id"
	"worksim.dev/worksim/internal/model"
	"worksim.dev/worksim/internal/refdata"
	"worksim.dev/worksim/internal/stats"
)

// FieldDefinitions instantiates the custom field template for the
// project's type.
func (g *Generator) FieldDefinitions(project model.Project) []model.FieldDefinition {
	templates := refdata.FieldTemplates[project.Type]
	defs := make([]model.FieldDefinition, 0, len(templates))
	for _, tmpl := range templates {
		defs = append(defs, model.FieldDefinition{
			ID:          id.New(),
			ProjectID:   project.ID,
			Name:        tmpl.Name,
			Type:        tmpl.Type,
			EnumOptions: tmpl.EnumOptions,
			CreatedAt:   g.tl.CreationTime(project.CreatedAt),
		})
	}
	return defs
}

// FieldValues assigns values for the project's field definitions to a
// fraction of its tasks. A populated task gets a value for every
// definition, matching how teams actually fill custom fields: either the
// project's fields are maintained on a task or none are.
func (g *Generator) FieldValues(tasks []model.Task, defs []model.FieldDefinition) ([]model.FieldValue, error) {
	var values []model.FieldValue
	for _, task := range tasks {
		if task.IsSubtask() || !stats.Bernoulli(g.r, g.cfg.FieldValueRate) {
			continue
		}
		for _, def := range defs {
			value, err := g.fieldValue(def, task.CreatedAt)
			if err != nil {
				return nil, err
			}
			values = append(values, model.FieldValue{
				ID:        id.New(),
				TaskID:    task.ID,
				FieldID:   def.ID,
				Value:     value,
				CreatedAt: g.tl.ModifiedTime(task.CreatedAt, g.tl.Now()),
			})
		}
	}
	return values, nil
}

func (g *Generator) fieldValue(def model.FieldDefinition, taskCreated time.Time) (model.Value, error) {
	switch def.Type {
	case model.FieldEnum:
		return model.EnumValue(def.EnumOptions[g.r.Intn(len(def.EnumOptions))]), nil
	case model.FieldNumber:
		return model.NumberValue(float64(1 + g.r.Intn(100))), nil
	case model.FieldDate:
		// A date field on a task reads like a milestone near the task's
		// own horizon.
		d := taskCreated.AddDate(0, 0, g.r.Intn(90))
		if d.After(g.tl.Now()) {
			d = g.tl.Now()
		}
		return model.DateValue(time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())), nil
	case model.FieldText:
		return model.TextValue(fmt.Sprintf("Notes for %s", def.Name)), nil
	default:
		return model.Value{}, fmt.Errorf("field %q: no value generator for type %q", def.Name, def.Type)
	}
}
