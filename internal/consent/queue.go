package consent

import (
	"encoding/json"
	"io"
)

// JSONQueue writes every command as a JSON array on its own line.
type JSONQueue struct {
	encoder *json.Encoder
}

func NewJSONQueue(writer io.Writer) *JSONQueue {
	return &JSONQueue{encoder: json.NewEncoder(writer)}
}

func (queue *JSONQueue) Push(command Command) error {
	return queue.encoder.Encode(command)
}
