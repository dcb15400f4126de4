// Package priority scores projects from their frontmatter signals.
//
// Each of the six scored dimensions maps its value to a level from 0 to 3. The
// score is a weighted sum of the levels plus a recurrence term and a set of
// interaction bonuses:
//
//	5*accountability + 4*status + 3*timeDistortion + 3*effort
//	  + 2*interest + 2*recurrence + 1*urgency + bonuses
//
// A project whose STATUS is "done" always scores 0.
package priority

import "time"

// Term weights.
const (
	WeightAccountability = 5
	WeightStatus         = 4
	WeightTimeDistortion = 3
	WeightEffort         = 3
	WeightInterest       = 2
	WeightRecurrence     = 2
	WeightUrgency        = 1
)

// Values substituted when a dimension field is absent. A field that is present
// with an unrecognized value is not defaulted; it scores 0.
const (
	DefaultAccountability = AccountabilityOffRadar
	DefaultStatus         = StatusActive
	DefaultTimeDistortion = TimeDistortionLinear
	DefaultEffort         = EffortPush
	DefaultInterest       = InterestSparking
	DefaultUrgency        = UrgencyLater
)

// Interaction bonuses.
const (
	// BonusStuckAccountable: stuck while someone is soon expecting a result.
	BonusStuckAccountable = 5
	// BonusQuickWin: expected to be quick but hard to start.
	BonusQuickWin = 3
	// BonusAvoidedAccountable: actively avoided work with looming accountability.
	BonusAvoidedAccountable = 4
)

// Signals holds the resolved value of every scored dimension.
type Signals struct {
	Accountability Accountability `json:"accountability"`
	Status         Status         `json:"status"`
	TimeDistortion TimeDistortion `json:"time_distortion"`
	Effort         Effort         `json:"effort"`
	Interest       Interest       `json:"interest"`
	Urgency        Urgency        `json:"urgency"`
}

// SignalsFrom resolves the dimension values from a field mapping, applying the
// per-dimension default for every absent field.
func SignalsFrom(fields map[string]string) Signals {
	get := func(key, def string) string {
		if v, ok := fields[key]; ok {
			return v
		}
		return def
	}

	return Signals{
		Accountability: Accountability(get(FieldAccountability, string(DefaultAccountability))),
		Status:         Status(get(FieldStatus, string(DefaultStatus))),
		TimeDistortion: TimeDistortion(get(FieldTimeDistortion, string(DefaultTimeDistortion))),
		Effort:         Effort(get(FieldEffort, string(DefaultEffort))),
		Interest:       Interest(get(FieldInterest, string(DefaultInterest))),
		Urgency:        Urgency(get(FieldUrgency, string(DefaultUrgency))),
	}
}

// Term is one weighted component of a score.
type Term struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Level  int    `json:"level"`
	Weight int    `json:"weight"`
}

// Points returns the weighted contribution of the term.
func (t Term) Points() int {
	return t.Level * t.Weight
}

// Bonus is a triggered interaction bonus.
type Bonus struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
	Points int    `json:"points"`
}

// Breakdown explains how a score was computed.
type Breakdown struct {
	Done    bool    `json:"done"`
	Signals Signals `json:"signals"`
	Terms   []Term  `json:"terms"`
	Bonuses []Bonus `json:"bonuses"`
}

// Base returns the weighted sum of all terms.
func (b Breakdown) Base() int {
	if b.Done {
		return 0
	}
	total := 0
	for _, t := range b.Terms {
		total += t.Points()
	}
	return total
}

// Total returns the final score.
func (b Breakdown) Total() int {
	if b.Done {
		return 0
	}
	total := b.Base()
	for _, bonus := range b.Bonuses {
		total += bonus.Points
	}
	return total
}

// Score returns the priority score of a project. rec may be nil. now is the
// reference time used for recurrence arithmetic.
func Score(fields map[string]string, rec *Recurrence, now time.Time) int {
	return Explain(fields, rec, now).Total()
}

// Explain computes the score of a project and returns every component.
func Explain(fields map[string]string, rec *Recurrence, now time.Time) Breakdown {
	sig := SignalsFrom(fields)

	if fields[FieldStatus] == string(StatusDone) {
		return Breakdown{Done: true, Signals: sig}
	}

	var (
		accountability = sig.Accountability.Level()
		status         = sig.Status.Level()
		timeDistortion = sig.TimeDistortion.Level()
		effort         = sig.Effort.Level()
		interest       = sig.Interest.Level()
		urgency        = sig.Urgency.Level()
		recurrence     = rec.Level(now)
	)

	b := Breakdown{
		Signals: sig,
		Terms: []Term{
			{Field: FieldAccountability, Value: string(sig.Accountability), Level: accountability, Weight: WeightAccountability},
			{Field: FieldStatus, Value: string(sig.Status), Level: status, Weight: WeightStatus},
			{Field: FieldTimeDistortion, Value: string(sig.TimeDistortion), Level: timeDistortion, Weight: WeightTimeDistortion},
			{Field: FieldEffort, Value: string(sig.Effort), Level: effort, Weight: WeightEffort},
			{Field: FieldInterest, Value: string(sig.Interest), Level: interest, Weight: WeightInterest},
			{Field: FieldRecurrence, Value: rec.String(), Level: recurrence, Weight: WeightRecurrence},
			{Field: FieldUrgency, Value: string(sig.Urgency), Level: urgency, Weight: WeightUrgency},
		},
	}

	if accountability >= 2 && status == 3 {
		b.Bonuses = append(b.Bonuses, Bonus{
			Name:   "stuck-accountable",
			Reason: "stuck while someone is expecting a result",
			Points: BonusStuckAccountable,
		})
	}
	if timeDistortion == 3 && effort >= 2 {
		b.Bonuses = append(b.Bonuses, Bonus{
			Name:   "quick-win",
			Reason: "quick task that is hard to start",
			Points: BonusQuickWin,
		})
	}
	if interest == 3 && accountability >= 2 {
		b.Bonuses = append(b.Bonuses, Bonus{
			Name:   "avoided-accountable",
			Reason: "avoided work with accountability close",
			Points: BonusAvoidedAccountable,
		})
	}

	return b
}
