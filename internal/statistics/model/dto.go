// Package model provides data transfer objects for statistics module.
package model

// GroupStatistics summarizes the groups of an assignment.
type GroupStatistics struct {
	TotalGroups      int     `json:"totalGroups"`
	FormingGroups    int     `json:"formingGroups"`
	ReadyGroups      int     `json:"readyGroups"`
	SubmittedGroups  int     `json:"submittedGroups"`
	TotalMembers     int     `json:"totalMembers"`
	AverageGroupSize float64 `json:"averageGroupSize"`
	OpenSeats        int     `json:"openSeats"`
}

// GroupStatisticsResponse represents response for group statistics.
type GroupStatisticsResponse struct {
	AssignmentID string          `json:"assignmentId"`
	Statistics   GroupStatistics `json:"statistics"`
}

// StudentResponseCount is the number of peer responses one student wrote.
type StudentResponseCount struct {
	StudentID     string `json:"studentId"`
	StudentName   string `json:"studentName"`
	ResponseCount int    `json:"responseCount"`
	MeetsMinimum  bool   `json:"meetsMinimum"`
}

// ResponseStatisticsResponse represents response for peer response statistics.
type ResponseStatisticsResponse struct {
	AssignmentID         string                 `json:"assignmentId"`
	MinResponsesRequired *int                   `json:"minResponsesRequired"`
	TotalResponses       int                    `json:"totalResponses"`
	Students             []StudentResponseCount `json:"students"`
	Total                int                    `json:"total"`
}
