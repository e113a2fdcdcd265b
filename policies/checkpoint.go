package policies

import (
	"encoding/json"
	"fmt"
	"os"
)

// Checkpoint is the serialized form of a SoftmaxQ policy. The curriculum
// driver chains training stages through these files.
type Checkpoint struct {
	Alpha       float64                       `json:"alpha"`
	Gamma       float64                       `json:"gamma"`
	Temperature float64                       `json:"temperature"`
	QTable      map[string]map[string]float64 `json:"q_table"`
}

func (s *SoftmaxQ) SaveCheckpoint(path string) error {
	cp := Checkpoint{
		Alpha:       s.alpha,
		Gamma:       s.gamma,
		Temperature: s.temperature,
		QTable:      s.qTable.Table,
	}
	bs, err := json.Marshal(cp)
	if err != nil {
		return fmt.Errorf("encode checkpoint: %w", err)
	}
	return os.WriteFile(path, bs, 0644)
}

func LoadCheckpoint(path string, seed int64) (*SoftmaxQ, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cp Checkpoint
	if err := json.Unmarshal(bs, &cp); err != nil {
		return nil, fmt.Errorf("decode checkpoint %s: %w", path, err)
	}
	policy := NewSoftmaxQ(cp.Alpha, cp.Gamma, cp.Temperature, seed)
	if cp.QTable != nil {
		policy.qTable.Table = cp.QTable
	}
	return policy, nil
}
