package roadnet

const (
	defaultSamplingStep = 1.0
)

// WithTrafficRule sets rule deciding entry/exit role of lanes at road ends
func WithTrafficRule(rule TrafficRule) func(*RoadNetwork) {
	return func(net *RoadNetwork) {
		if rule != nil {
			net.trafficRule = rule
		}
	}
}

// WithAnnouncer sets hook notified about created and removed elements
func WithAnnouncer(announcer Announcer) func(*RoadNetwork) {
	return func(net *RoadNetwork) {
		if announcer != nil {
			net.announcer = announcer
		}
	}
}

// WithSamplingStep sets step (meters) used to approximate reference lines by polylines
func WithSamplingStep(step float64) func(*RoadNetwork) {
	return func(net *RoadNetwork) {
		if step > 0 {
			net.samplingStep = step
		}
	}
}

type mergeOptions struct {
	maxEndpointDistance float64
}

// WithMaxEndpointDistance rejects pairs whose lane end positions are farther than given distance.
// Zero or negative value disables the check.
func WithMaxEndpointDistance(distance float64) func(*mergeOptions) {
	return func(opts *mergeOptions) {
		opts.maxEndpointDistance = distance
	}
}
