package model

import "fmt"

type NotFoundError struct {
	PredictionId string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("prediction %s not found in history", e.PredictionId)
}

type InvalidInputError struct {
	Message string
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Message)
}
