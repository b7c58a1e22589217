package scenario

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath-community/go-jmespath"

	apperrors "github.com/collabhub/hubclient/internal/errors"
)

// asDocument round-trips a typed API value through JSON so JMESPath can
// walk it as generic maps and slices.
func asDocument(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode check document: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode check document: %w", err)
	}
	return doc, nil
}

// Query evaluates a JMESPath expression over a typed value.
func Query(v any, expression string) (any, error) {
	doc, err := asDocument(v)
	if err != nil {
		return nil, err
	}
	result, err := jmespath.Search(expression, doc)
	if err != nil {
		return nil, fmt.Errorf("jmespath %q: %w", expression, err)
	}
	return result, nil
}

// CheckTrue fails unless the expression evaluates to boolean true.
func CheckTrue(v any, expression string) error {
	result, err := Query(v, expression)
	if err != nil {
		return err
	}
	ok, isBool := result.(bool)
	if !isBool {
		return apperrors.Validation(fmt.Sprintf("check %q returned %T, want boolean", expression, result))
	}
	if !ok {
		return apperrors.Validation(fmt.Sprintf("check %q is false", expression))
	}
	return nil
}

// CheckCount fails unless the expression selects exactly want elements.
func CheckCount(v any, expression string, want int) error {
	result, err := Query(v, expression)
	if err != nil {
		return err
	}
	items, isSlice := result.([]any)
	if !isSlice {
		return apperrors.Validation(fmt.Sprintf("check %q returned %T, want array", expression, result))
	}
	if len(items) != want {
		return apperrors.Validation(fmt.Sprintf("check %q selected %d elements, want %d", expression, len(items), want))
	}
	return nil
}
