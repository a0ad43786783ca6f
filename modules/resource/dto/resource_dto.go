package dto

type QuizQuestionResponse struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type QuizAnswer struct {
	QuestionID int `json:"question_id"`
	Choice     int `json:"choice"`
}

type GradeQuizRequest struct {
	Answers []QuizAnswer `json:"answers" validate:"required"`
}

type QuizResultResponse struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

type MaterialResponse struct {
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}
