package service

import (
	"context"
	"fmt"
	"time"

	assignmentModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/assignment/model"
	peerResponseModel "github.com/DannyWilsonCodeShop/classcast-platform/internal/peerresponse/model"
)

const (
	msgNotEnabled    = "Peer responses are not enabled for this assignment"
	msgDueDatePassed = "Response due date has passed"
)

func msgTooFewWords(limit, count int) string {
	return fmt.Sprintf("Response must be at least %d words (currently %d)", limit, count)
}

func msgTooManyCharacters(limit, count int) string {
	return fmt.Sprintf("Response must be no more than %d characters (currently %d)", limit, count)
}

func msgMinimumMet(required int) string {
	return fmt.Sprintf("You have already completed the minimum required responses (%d)", required)
}

func msgVideoFull(limit int) string {
	return fmt.Sprintf("This video has reached the maximum number of responses (%d)", limit)
}

// Counter supplies the existing response counts the rules depend on.
type Counter interface {
	CountByStudent(ctx context.Context, assignmentID, studentID string) (int64, error)
	CountByVideo(ctx context.Context, videoID string) (int64, error)
}

// Validate applies the assignment's peer-response rules in order. The feature
// gate and the due date stop evaluation; length and capacity problems
// accumulate. Counts are only queried for rules the assignment sets, and the
// student's count is keyed by assignmentID rather than a.AssignmentID.
func Validate(
	ctx context.Context,
	counter Counter,
	a *assignmentModel.Assignment,
	assignmentID, videoID, studentID, content string,
	now time.Time,
) (*peerResponseModel.ValidationResult, error) {
	result := peerResponseModel.NewValidationResult()

	if !a.EnablePeerResponses {
		result.AddError(msgNotEnabled)
		return result, nil
	}
	if a.DueDatePassed(now) {
		result.AddError(msgDueDatePassed)
		return result, nil
	}

	if limit, ok := assignmentModel.Limit(a.ResponseWordLimit); ok {
		if words := peerResponseModel.CountWords(content); words < limit {
			result.AddError(msgTooFewWords(limit, words))
		}
	}

	if limit, ok := assignmentModel.Limit(a.ResponseCharacterLimit); ok {
		if chars := peerResponseModel.CountCharacters(content); chars > limit {
			result.AddError(msgTooManyCharacters(limit, chars))
		}
	}

	if required, ok := assignmentModel.Limit(a.MinResponsesRequired); ok {
		n, err := counter.CountByStudent(ctx, assignmentID, studentID)
		if err != nil {
			return nil, fmt.Errorf("count student responses: %w", err)
		}
		if n >= int64(required) {
			result.AddWarning(msgMinimumMet(required))
		}
	}

	if limit, ok := assignmentModel.Limit(a.MaxResponsesPerVideo); ok {
		n, err := counter.CountByVideo(ctx, videoID)
		if err != nil {
			return nil, fmt.Errorf("count video responses: %w", err)
		}
		if n >= int64(limit) {
			result.AddError(msgVideoFull(limit))
		}
	}

	return result, nil
}
