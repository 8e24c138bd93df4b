package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

var categoryPlaceholder = regexp.MustCompile(`\{category:([^}]+)\}`)

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// iSendARequestTo replaces {category:Title} placeholders with category ids
// before sending the request.
func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	var missing error
	endpoint = categoryPlaceholder.ReplaceAllStringFunc(endpoint, func(match string) string {
		title := categoryPlaceholder.FindStringSubmatch(match)[1]
		id, ok := tc.categories[title]
		if !ok {
			missing = fmt.Errorf("category %s has not been created", title)
			return match
		}
		return id.String()
	})
	if missing != nil {
		return ctx, missing
	}

	req, err := http.NewRequestWithContext(ctx, method, tc.server.URL+endpoint, nil)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := tc.client.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}
	if value == nil {
		return fmt.Errorf("field '%s' expected '%s', got null", field, expected)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldBeNull(ctx context.Context, field string) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}
	if value != nil {
		return fmt.Errorf("field '%s' expected null, got '%v'", field, value)
	}
	return nil
}

func theResponseFieldShouldHaveElements(ctx context.Context, field string, quantity int) error {
	value, err := responseField(ctx, field)
	if err != nil {
		return err
	}

	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array", field)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d elements, got %d", field, quantity, len(items))
	}
	return nil
}

func theResponseFieldShouldBeCategoryID(ctx context.Context, field, title string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	id, ok := tc.categories[title]
	if !ok {
		return fmt.Errorf("category %s has not been created", title)
	}
	return theResponseFieldShouldBe(ctx, field, id.String())
}

// responseField resolves a dot separated path such as "items.0.amount".
// Numbers keep their JSON text so amounts compare as "170.00".
func responseField(ctx context.Context, dotSeparatedField string) (any, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return nil, fmt.Errorf("test context not found")
	}

	decoder := json.NewDecoder(bytes.NewReader(tc.responseBody))
	decoder.UseNumber()

	var field any
	if err := decoder.Decode(&field); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		switch node := field.(type) {
		case []any:
			i, err := strconv.Atoi(currentField)
			if err != nil || i < 0 || i >= len(node) {
				return nil, fmt.Errorf("index '%s' out of range in '%s'", currentField, dotSeparatedField)
			}
			field = node[i]
		case map[string]any:
			value, ok := node[currentField]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response", dotSeparatedField)
			}
			field = value
		default:
			return nil, fmt.Errorf("field '%s' cannot be resolved on %v", dotSeparatedField, reflect.TypeOf(field))
		}
	}

	return field, nil
}
