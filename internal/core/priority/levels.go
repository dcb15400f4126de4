package priority

// Frontmatter keys for the scored dimensions.
const (
	FieldAccountability = "ACCOUNTABILITY"
	FieldStatus         = "STATUS"
	FieldTimeDistortion = "TIME_DISTORTION"
	FieldEffort         = "EFFORT"
	FieldInterest       = "INTEREST"
	FieldUrgency        = "URGENCY"
)

// Accountability is how soon someone external will ask about the project.
type Accountability string

const (
	AccountabilityOffRadar Accountability = "off-radar"
	AccountabilityDistant  Accountability = "distant"
	AccountabilityLooming  Accountability = "looming"
	AccountabilityImminent Accountability = "imminent"
)

// Level returns 0-3. Unknown values are 0.
func (a Accountability) Level() int {
	switch a {
	case AccountabilityDistant:
		return 1
	case AccountabilityLooming:
		return 2
	case AccountabilityImminent:
		return 3
	default:
		return 0
	}
}

// Status is the current state of the project.
type Status string

const (
	StatusDone    Status = "done"
	StatusActive  Status = "active"
	StatusWaiting Status = "waiting"
	StatusStuck   Status = "stuck"
)

func (s Status) Level() int {
	switch s {
	case StatusActive:
		return 1
	case StatusWaiting:
		return 2
	case StatusStuck:
		return 3
	default:
		return 0
	}
}

// TimeDistortion is the perceived versus actual duration of the work.
type TimeDistortion string

const (
	TimeDistortionWarp    TimeDistortion = "warp"
	TimeDistortionLinear  TimeDistortion = "linear"
	TimeDistortionBalloon TimeDistortion = "balloon"
	TimeDistortionBlink   TimeDistortion = "blink"
)

func (t TimeDistortion) Level() int {
	switch t {
	case TimeDistortionLinear:
		return 1
	case TimeDistortionBalloon:
		return 2
	case TimeDistortionBlink:
		return 3
	default:
		return 0
	}
}

// Effort is the subjective difficulty of getting started.
type Effort string

const (
	EffortFlow       Effort = "flow"
	EffortPush       Effort = "push"
	EffortResist     Effort = "resist"
	EffortImpossible Effort = "impossible"
)

func (e Effort) Level() int {
	switch e {
	case EffortPush:
		return 1
	case EffortResist:
		return 2
	case EffortImpossible:
		return 3
	default:
		return 0
	}
}

// Interest has no zero level; only unknown values score 0.
type Interest string

const (
	InterestEngaged  Interest = "engaged"
	InterestSparking Interest = "sparking"
	InterestAvoiding Interest = "avoiding"
)

func (i Interest) Level() int {
	switch i {
	case InterestEngaged:
		return 1
	case InterestSparking:
		return 2
	case InterestAvoiding:
		return 3
	default:
		return 0
	}
}

// Urgency is the externally imposed time pressure.
type Urgency string

const (
	UrgencyIgnore Urgency = "ignore"
	UrgencyLater  Urgency = "later"
	UrgencySoon   Urgency = "soon"
	UrgencyNow    Urgency = "now"
)

func (u Urgency) Level() int {
	switch u {
	case UrgencyLater:
		return 1
	case UrgencySoon:
		return 2
	case UrgencyNow:
		return 3
	default:
		return 0
	}
}

// Option is one accepted value of a dimension and its level.
type Option struct {
	Value string `json:"value"`
	Level int    `json:"level"`
	Help  string `json:"help"`
}

// Dimension describes a scored frontmatter field.
type Dimension struct {
	Field   string   `json:"field"`
	Weight  int      `json:"weight"`
	Default string   `json:"default"`
	Help    string   `json:"help"`
	Options []Option `json:"options"` // ascending level order
}

// Valid reports whether value is one of the dimension's options.
func (d Dimension) Valid(value string) bool {
	for _, o := range d.Options {
		if o.Value == value {
			return true
		}
	}
	return false
}

// Values returns the accepted option values in ascending level order.
func (d Dimension) Values() []string {
	values := make([]string, len(d.Options))
	for i, o := range d.Options {
		values[i] = o.Value
	}
	return values
}

// Dimensions lists the scored fields in weight order.
func Dimensions() []Dimension {
	return []Dimension{
		{
			Field:   FieldAccountability,
			Weight:  WeightAccountability,
			Default: string(DefaultAccountability),
			Help:    "How soon someone external will ask about this.",
			Options: []Option{
				{string(AccountabilityOffRadar), AccountabilityOffRadar.Level(), "No external accountability in sight."},
				{string(AccountabilityDistant), AccountabilityDistant.Level(), "Eventually accountable but no one is checking right now."},
				{string(AccountabilityLooming), AccountabilityLooming.Level(), "Accountability is coming, with some breathing room."},
				{string(AccountabilityImminent), AccountabilityImminent.Level(), "Someone is about to check in."},
			},
		},
		{
			Field:   FieldStatus,
			Weight:  WeightStatus,
			Default: string(DefaultStatus),
			Help:    "Current state. done always scores 0.",
			Options: []Option{
				{string(StatusDone), StatusDone.Level(), "Completed."},
				{string(StatusActive), StatusActive.Level(), "Thinking about it or working on it."},
				{string(StatusWaiting), StatusWaiting.Level(), "Handed off or waiting on input from others."},
				{string(StatusStuck), StatusStuck.Level(), "Blocked by external or internal factors."},
			},
		},
		{
			Field:   FieldTimeDistortion,
			Weight:  WeightTimeDistortion,
			Default: string(DefaultTimeDistortion),
			Help:    "Perceived versus actual duration.",
			Options: []Option{
				{string(TimeDistortionWarp), TimeDistortionWarp.Level(), "Likely to lose track of time for hours."},
				{string(TimeDistortionLinear), TimeDistortionLinear.Level(), "Time expectations are likely accurate."},
				{string(TimeDistortionBalloon), TimeDistortionBalloon.Level(), "Likely to take much longer than it looks."},
				{string(TimeDistortionBlink), TimeDistortionBlink.Level(), "Much quicker than expected."},
			},
		},
		{
			Field:   FieldEffort,
			Weight:  WeightEffort,
			Default: string(DefaultEffort),
			Help:    "Subjective difficulty of starting.",
			Options: []Option{
				{string(EffortFlow), EffortFlow.Level(), "Minimal resistance."},
				{string(EffortPush), EffortPush.Level(), "Needs a bit of effort to start."},
				{string(EffortResist), EffortResist.Level(), "High resistance, likely to procrastinate."},
				{string(EffortImpossible), EffortImpossible.Level(), "Feels like a brick wall."},
			},
		},
		{
			Field:   FieldInterest,
			Weight:  WeightInterest,
			Default: string(DefaultInterest),
			Help:    "How the work feels right now.",
			Options: []Option{
				{string(InterestEngaged), InterestEngaged.Level(), "Hyperfocused and deeply into it."},
				{string(InterestSparking), InterestSparking.Level(), "Trying to make it interesting enough to start."},
				{string(InterestAvoiding), InterestAvoiding.Level(), "Likely to put off due to tedium."},
			},
		},
		{
			Field:   FieldUrgency,
			Weight:  WeightUrgency,
			Default: string(DefaultUrgency),
			Help:    "External time pressure.",
			Options: []Option{
				{string(UrgencyIgnore), UrgencyIgnore.Level(), "Over a month away."},
				{string(UrgencyLater), UrgencyLater.Level(), "Coming up, not an immediate focus."},
				{string(UrgencySoon), UrgencySoon.Level(), "By the end of this week or next."},
				{string(UrgencyNow), UrgencyNow.Level(), "Must be done today."},
			},
		},
	}
}

// LookupDimension returns the dimension for a frontmatter field name.
func LookupDimension(field string) (Dimension, bool) {
	for _, d := range Dimensions() {
		if d.Field == field {
			return d, true
		}
	}
	return Dimension{}, false
}
