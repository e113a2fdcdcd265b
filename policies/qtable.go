package policies

import "math"

// QTable maps state hash -> action hash -> value.
type QTable struct {
	Table map[string]map[string]float64 `json:"table"`
}

func NewQTable() *QTable {
	return &QTable{
		Table: make(map[string]map[string]float64),
	}
}

func (q *QTable) Get(state, action string, def float64) float64 {
	if _, ok := q.Table[state]; !ok {
		q.Table[state] = make(map[string]float64)
	}
	if _, ok := q.Table[state][action]; !ok {
		q.Table[state][action] = def
	}
	return q.Table[state][action]
}

func (q *QTable) Set(state, action string, val float64) {
	if _, ok := q.Table[state]; !ok {
		q.Table[state] = make(map[string]float64)
	}
	q.Table[state][action] = val
}

func (q *QTable) HasState(state string) bool {
	_, ok := q.Table[state]
	return ok
}

// Max returns the highest value recorded for the state, or def when the
// state has no recorded actions yet.
func (q *QTable) Max(state string, def float64) float64 {
	vals, ok := q.Table[state]
	if !ok || len(vals) == 0 {
		return def
	}
	maxVal := math.Inf(-1)
	for _, val := range vals {
		if val > maxVal {
			maxVal = val
		}
	}
	return maxVal
}

// States is the number of distinct states seen so far.
func (q *QTable) States() int {
	return len(q.Table)
}
