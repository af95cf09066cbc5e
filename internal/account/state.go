package account

import (
	"encoding/json"
	"os"
	"time"

	"github.com/lostmonster84/winmore/internal/model"
)

// LoadState reads the account state from a JSON file. Returns a zero state
// if the file doesn't exist.
func LoadState(filePath string) (*model.AccountState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.AccountState{}, nil
		}
		return nil, err
	}
	var state model.AccountState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// SaveState writes the account state to a JSON file.
func SaveState(filePath string, state *model.AccountState) error {
	state.UpdatedAt = time.Now()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
