package generation

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/phrazzld/flashgen/internal/domain"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// responseSchema is a named JSON Schema describing an object-shaped model
// response.
type responseSchema struct {
	Name       string
	Definition map[string]any
}

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

var studyPlanSchema = responseSchema{
	Name: "study_plan",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"weekly_plans"},
		"properties": map[string]any{
			"total_weeks":    map[string]any{"type": "integer", "minimum": 1},
			"weekly_hours":   map[string]any{"type": "number", "minimum": 0},
			"subjects_focus": map[string]any{"type": "object"},
			"weekly_plans": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []any{"week"},
					"properties": map[string]any{
						"week":  map[string]any{"type": "integer"},
						"theme": map[string]any{"type": "string"},
						"daily_schedule": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type":     "object",
								"required": []any{"day"},
								"properties": map[string]any{
									"day":        map[string]any{"type": "string"},
									"tasks":      stringArray,
									"time_slots": stringArray,
									"subjects":   stringArray,
									"techniques": stringArray,
								},
							},
						},
						"goals":         stringArray,
						"review_topics": stringArray,
					},
				},
			},
			"study_techniques": map[string]any{
				"type":                 "object",
				"additionalProperties": stringArray,
			},
			"tips": stringArray,
		},
	},
}

var studyTipSchema = responseSchema{
	Name: "study_tip",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"title", "description"},
		"properties": map[string]any{
			"title":               map[string]any{"type": "string", "minLength": 1},
			"description":         map[string]any{"type": "string", "minLength": 1},
			"category":            map[string]any{"type": "string"},
			"difficulty":          map[string]any{"type": "string"},
			"implementation":      stringArray,
			"subjects_applicable": stringArray,
			"time_required":       map[string]any{"type": "string"},
		},
	},
}

var textOrNumber = map[string]any{"type": []any{"string", "number"}, "minLength": 1}

// quizQuestionSchema accepts a question of a supported type. Multiple-choice
// questions need exactly four string options; the other types must not carry
// any.
var quizQuestionSchema = responseSchema{
	Name: "quiz_question",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"question", "correct_answer", "type"},
		"properties": map[string]any{
			"question":       textOrNumber,
			"correct_answer": textOrNumber,
			"type": map[string]any{
				"enum": []any{
					string(domain.QuestionMultipleChoice),
					string(domain.QuestionShortAnswer),
					string(domain.QuestionLongAnswer),
				},
			},
		},
		"if": map[string]any{
			"properties": map[string]any{
				"type": map[string]any{"const": string(domain.QuestionMultipleChoice)},
			},
		},
		"then": map[string]any{
			"required": []any{"options"},
			"properties": map[string]any{
				"options": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"minItems": domain.MultipleChoiceOptions,
					"maxItems": domain.MultipleChoiceOptions,
				},
			},
		},
		"else": map[string]any{
			"properties": map[string]any{
				"options": map[string]any{"type": "null"},
			},
		},
	},
}

var progressSchema = responseSchema{
	Name: "progress_analysis",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"overall_score", "performance_level"},
		"properties": map[string]any{
			"overall_score":         map[string]any{"type": "number", "minimum": 0, "maximum": 100},
			"performance_level":     map[string]any{"type": "string", "minLength": 1},
			"strengths":             stringArray,
			"areas_for_improvement": stringArray,
			"recommendations": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"action"},
					"properties": map[string]any{
						"category":        map[string]any{"type": "string"},
						"action":          map[string]any{"type": "string"},
						"expected_impact": map[string]any{"type": "string"},
						"timeline":        map[string]any{"type": "string"},
					},
				},
			},
			"next_goals": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"goal"},
					"properties": map[string]any{
						"goal":         map[string]any{"type": "string"},
						"target_value": map[string]any{"type": "string"},
						"deadline":     map[string]any{"type": "string"},
					},
				},
			},
			"insights":           stringArray,
			"motivation_message": map[string]any{"type": "string"},
		},
	},
}

// validateAgainst checks a decoded JSON value against schema. Failures wrap
// ErrValidationEmpty because the payload, while parseable, is unusable.
func validateAgainst(schema responseSchema, doc any) error {
	compiled, err := compiledSchema(schema)
	if err != nil {
		return err
	}
	if err := compiled.Validate(doc); err != nil {
		return fmt.Errorf("%w: %s schema: %v", ErrValidationEmpty, schema.Name, err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(schema responseSchema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler expects a parsed JSON value, so round-trip the Go map.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema %s: %w", schema.Name, err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", schema.Name, err)
	}

	c := jsonschema.NewCompiler()
	url := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add schema %s: %w", schema.Name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", schema.Name, err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
