package event

var typeToName = map[EventType]string{
	EventWallImpact:       "WallImpact",
	EventPaddleImpact:     "PaddleImpact",
	EventGoal:             "Goal",
	EventBallReset:        "BallReset",
	EventPowerUpSpawned:   "PowerUpSpawned",
	EventPowerUpCollected: "PowerUpCollected",
	EventEffectExpired:    "EffectExpired",
	EventBallSpawned:      "BallSpawned",
	EventBallExpired:      "BallExpired",
	EventPaused:           "Paused",
	EventResumed:          "Resumed",
}

var nameToType = func() map[string]EventType {
	m := make(map[string]EventType, len(typeToName))
	for t, n := range typeToName {
		m[n] = t
	}
	return m
}()

// String returns the registered name, "Unknown" for unregistered values
func (t EventType) String() string {
	if n, ok := typeToName[t]; ok {
		return n
	}
	return "Unknown"
}

// GetEventType returns the EventType for a given name
func GetEventType(name string) (EventType, bool) {
	et, ok := nameToType[name]
	return et, ok
}

// AllTypes returns every registered event type in declaration order
func AllTypes() []EventType {
	types := make([]EventType, 0, len(typeToName))
	for t := EventWallImpact; t <= EventResumed; t++ {
		types = append(types, t)
	}
	return types
}
