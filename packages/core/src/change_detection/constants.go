package change_detection

// ChangeDetectionStrategy describes within the change detector which strategy
// will be used the next time change detection is triggered.
type ChangeDetectionStrategy int

const (
	// ChangeDetectionStrategyOnPush - Use the CheckOnce strategy, meaning
	// that automatic change detection is deactivated until reactivated by
	// setting the strategy to Default (CheckAlways). Change detection can
	// still be explicitly invoked.
	ChangeDetectionStrategyOnPush ChangeDetectionStrategy = iota

	// ChangeDetectionStrategyDefault - Use the default CheckAlways strategy,
	// in which change detection is automatic until explicitly deactivated.
	ChangeDetectionStrategyDefault
)
