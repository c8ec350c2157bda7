package celcondition

import (
	"fmt"

	"github.com/google/cel-go/cel"
	celtypes "github.com/google/cel-go/common/types"
)

// TextVariable is the name the inbound message text is bound to in conditions.
const TextVariable = "text"

// PrepareCondition compiles a reply condition such as `text.startsWith("予約")`
// and checks that it yields a boolean.
func PrepareCondition(celCondition string) (cel.Program, error) {
	env, err := cel.NewEnv(cel.Variable(TextVariable, cel.StringType))
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	ast, issues := env.Compile(celCondition)
	if issues != nil && issues.Err() != nil {
		return nil, issues.Err()
	}
	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("failed to program CEL expression: %w", err)
	}

	out, _, err := prg.Eval(map[string]any{TextVariable: ""})
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate CEL condition: %w", err)
	}
	if out.Type() != celtypes.BoolType {
		return nil, fmt.Errorf("output type is not bool: %s", out.Type())
	}
	return prg, nil
}

// EvaluateCondition runs a prepared condition against a message text.
func EvaluateCondition(prg cel.Program, text string) (bool, error) {
	if prg == nil {
		return false, fmt.Errorf("program is nil")
	}
	out, _, err := prg.Eval(map[string]any{TextVariable: text})
	if err != nil {
		return false, fmt.Errorf("failed to evaluate CEL condition: %w", err)
	}
	return out.Type() == celtypes.BoolType && out.Value() == true, nil
}
