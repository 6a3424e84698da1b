// Package targeting builds LaunchDarkly evaluation contexts from launchpad
// user identifiers.
package targeting

import (
	"fmt"

	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
)

// Build constructs an evaluation context for the given user key plus
// optional string attributes. The key must be non-empty; attributes are
// passed through untouched for the config service's targeting rules.
func Build(userKey string, attributes map[string]string) (ldcontext.Context, error) {
	if userKey == "" {
		return ldcontext.Context{}, fmt.Errorf("user key must not be empty")
	}

	b := ldcontext.NewBuilder(userKey)
	for k, v := range attributes {
		b.SetString(k, v)
	}
	ctx := b.Build()
	if err := ctx.Err(); err != nil {
		return ldcontext.Context{}, fmt.Errorf("build context for %q: %w", userKey, err)
	}
	return ctx, nil
}
