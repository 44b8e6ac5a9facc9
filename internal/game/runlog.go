package game

import "fmt"

// RunLog records statistics gathered during one expedition.
type RunLog struct {
	Steps          int
	Turns          int
	DoorsOpened    int
	SecretsFound   int
	TreasuresTaken int
	Encounters     int
	LevelsVisited  map[string]bool
}

// NewRunLog returns an empty log ready to record.
func NewRunLog() RunLog {
	return RunLog{LevelsVisited: make(map[string]bool)}
}

// Visit records that a floor has been entered.
func (l *RunLog) Visit(name string) {
	l.LevelsVisited[name] = true
}

// Lines renders the log as label/value pairs for the end screen.
func (l RunLog) Lines() [][2]string {
	return [][2]string{
		{"Floors Explored:", fmt.Sprintf("%d", len(l.LevelsVisited))},
		{"Steps Taken:", fmt.Sprintf("%d", l.Steps)},
		{"Turns Spent:", fmt.Sprintf("%d", l.Turns)},
		{"Doors Opened:", fmt.Sprintf("%d", l.DoorsOpened)},
		{"Secrets Found:", fmt.Sprintf("%d", l.SecretsFound)},
		{"Treasures Taken:", fmt.Sprintf("%d", l.TreasuresTaken)},
		{"Close Calls:", fmt.Sprintf("%d", l.Encounters)},
	}
}
