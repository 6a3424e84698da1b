package aiconfig

import (
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// Event names follow the LaunchDarkly AI Config metric conventions so the
// dashboard picks them up.
const (
	eventGenerationSuccess = "$ld:ai:generation:success"
	eventGenerationError   = "$ld:ai:generation:error"
	eventDurationTotal     = "$ld:ai:duration:total"
)

// Tracker reports usage of a fetched config back to the service. One
// tracker is bound to a single fetch; it carries the config key and the
// evaluation context of that fetch.
type Tracker struct {
	src     FlagSource
	key     string
	context ldcontext.Context
}

func newTracker(src FlagSource, key string, context ldcontext.Context) *Tracker {
	return &Tracker{src: src, key: key, context: context}
}

// TrackSuccess records a successful generation against this config.
func (t *Tracker) TrackSuccess() {
	_ = t.src.TrackEvent(eventGenerationSuccess, t.context)
}

// TrackError records a failed generation against this config.
func (t *Tracker) TrackError() {
	_ = t.src.TrackEvent(eventGenerationError, t.context)
}

// TrackDuration records the total model-call duration for a generation.
func (t *Tracker) TrackDuration(d time.Duration) {
	data := ldvalue.ObjectBuild().Set("configKey", ldvalue.String(t.key)).Build()
	_ = t.src.TrackMetric(eventDurationTotal, t.context, float64(d.Milliseconds()), data)
}
