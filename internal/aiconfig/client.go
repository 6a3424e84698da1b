// Package aiconfig fetches agent-mode AI Configs from LaunchDarkly and
// renders their instruction templates. A fetch never fails: any service
// error, malformed payload, or targeting miss degrades to the disabled
// variant and the caller skips that stage.
package aiconfig

import (
	"fmt"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
	ld "github.com/launchdarkly/go-server-sdk/v7"
)

// FlagSource is the slice of the LaunchDarkly SDK client the fetcher
// needs. Interface for testing; *ld.LDClient satisfies it.
type FlagSource interface {
	JSONVariation(key string, context ldcontext.Context, defaultVal ldvalue.Value) (ldvalue.Value, error)
	TrackEvent(eventName string, context ldcontext.Context) error
	TrackMetric(eventName string, context ldcontext.Context, metricValue float64, data ldvalue.Value) error
}

// Config is the enabled variant of a fetched AI Config: a model name,
// rendered instructions, and a tracker for usage events. Obtained only
// through the ok=true return of Client.AgentConfig, so a caller cannot
// reach the model or instructions without passing the enabled branch.
type Config struct {
	Key          string
	Model        string
	Provider     string
	Instructions string
	Tracker      *Tracker
}

// Client fetches agent configs from a flag source.
type Client struct {
	src FlagSource
}

// NewClient creates a Client on top of an initialized flag source.
func NewClient(src FlagSource) *Client {
	return &Client{src: src}
}

// Dial connects to LaunchDarkly and waits up to waitFor for the SDK to
// initialize. A client that fails to initialize is unusable for targeting,
// so that is an error rather than a degraded state.
func Dial(sdkKey string, waitFor time.Duration) (*ld.LDClient, error) {
	client, err := ld.MakeClient(sdkKey, waitFor)
	if err != nil {
		return nil, fmt.Errorf("initialize LaunchDarkly client: %w", err)
	}
	if !client.Initialized() {
		_ = client.Close()
		return nil, fmt.Errorf("LaunchDarkly client failed to initialize within %s", waitFor)
	}
	return client, nil
}

// AgentConfig fetches the named config for the given context and renders
// its instruction template with vars. The second return is false when the
// config is disabled for this context or anything at all went wrong; the
// zero Config carries no usable fields in that case.
func (c *Client) AgentConfig(key string, context ldcontext.Context, vars Vars) (Config, bool) {
	val, err := c.src.JSONVariation(key, context, ldvalue.Null())
	if err != nil || val.IsNull() {
		return Config{}, false
	}

	meta := val.GetByKey("_ldMeta")
	if !meta.GetByKey("enabled").BoolValue() {
		return Config{}, false
	}

	model := val.GetByKey("model").GetByKey("name").StringValue()
	if model == "" {
		// Enabled but unusable; treat like any other service failure.
		return Config{}, false
	}

	instructions, err := Render(val.GetByKey("instructions").StringValue(), vars)
	if err != nil {
		return Config{}, false
	}

	return Config{
		Key:          key,
		Model:        model,
		Provider:     val.GetByKey("provider").GetByKey("name").StringValue(),
		Instructions: instructions,
		Tracker:      newTracker(c.src, key, context),
	}, true
}
