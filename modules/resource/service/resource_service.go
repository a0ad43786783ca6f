package service

import (
	"context"
	"math/rand/v2"

	"internhub/core/constants"
	"internhub/core/errors"
	"internhub/core/logger"
	"internhub/core/storage"
	"internhub/modules/resource/dto"
	"internhub/modules/resource/entity"
)

type ResourceServiceInterface interface {
	ListResources(ctx context.Context) ([]entity.Resource, *errors.AppError)
	GenerateQuiz(ctx context.Context, count int) ([]dto.QuizQuestionResponse, *errors.AppError)
	GradeQuiz(ctx context.Context, req *dto.GradeQuizRequest) (*dto.QuizResultResponse, *errors.AppError)
	ListMaterials(ctx context.Context) ([]dto.MaterialResponse, *errors.AppError)
}

type ResourceService struct {
	storage storage.IStorage
}

func NewResourceService(storage storage.IStorage) *ResourceService {
	return &ResourceService{storage: storage}
}

func (s *ResourceService) ListResources(_ context.Context) ([]entity.Resource, *errors.AppError) {
	return resourceSeed, nil
}

// GenerateQuiz returns a random non-repeating subset of the question pool
// with answers withheld. Count is clamped to the pool size.
func (s *ResourceService) GenerateQuiz(_ context.Context, count int) ([]dto.QuizQuestionResponse, *errors.AppError) {
	if count < 1 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Count must be at least 1", nil)
	}
	if count > len(quizPool) {
		count = len(quizPool)
	}

	questions := make([]dto.QuizQuestionResponse, 0, count)
	for _, i := range rand.Perm(len(quizPool))[:count] {
		q := quizPool[i]
		questions = append(questions, dto.QuizQuestionResponse{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options,
		})
	}
	return questions, nil
}

func (s *ResourceService) GradeQuiz(_ context.Context, req *dto.GradeQuizRequest) (*dto.QuizResultResponse, *errors.AppError) {
	if len(req.Answers) == 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "Answers are required", nil)
	}

	answerKey := make(map[int]int, len(quizPool))
	for _, q := range quizPool {
		answerKey[q.ID] = q.Answer
	}

	result := &dto.QuizResultResponse{Total: len(req.Answers)}
	for _, answer := range req.Answers {
		correct, ok := answerKey[answer.QuestionID]
		if !ok {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "Unknown question in submission", nil)
		}
		if answer.Choice == correct {
			result.Correct++
		}
	}
	return result, nil
}

func (s *ResourceService) ListMaterials(ctx context.Context) ([]dto.MaterialResponse, *errors.AppError) {
	materials := make([]dto.MaterialResponse, 0, len(materialSeed))
	for _, m := range materialSeed {
		url, err := s.storage.PresignDownloadURL(ctx, m.Key, constants.MaterialURLExpiry)
		if err != nil {
			logger.Error("ResourceService:ListMaterials:Error:", err, "key", m.Key)
			return nil, errors.NewAppError(errors.ErrGetFailed, "Failed to list materials", err)
		}
		materials = append(materials, dto.MaterialResponse{
			Name:        m.Name,
			DownloadURL: url,
		})
	}
	return materials, nil
}
