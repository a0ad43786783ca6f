package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"internhub/modules/resource/dto"
	"internhub/modules/resource/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	err error
}

func (f *fakeStorage) PresignDownloadURL(_ context.Context, key string, _ time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "https://files.example.com/" + key + "?signed", nil
}

func TestGenerateQuizReturnsDistinctQuestions(t *testing.T) {
	svc := NewResourceService(&fakeStorage{})

	questions, appErr := svc.GenerateQuiz(context.Background(), 5)
	require.Nil(t, appErr)
	require.Len(t, questions, 5)

	seen := map[int]bool{}
	for _, q := range questions {
		assert.False(t, seen[q.ID], "question %d repeated", q.ID)
		seen[q.ID] = true
		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 4)
	}
}

func TestGenerateQuizClampsToPoolSize(t *testing.T) {
	svc := NewResourceService(&fakeStorage{})

	questions, appErr := svc.GenerateQuiz(context.Background(), len(quizPool)+50)
	require.Nil(t, appErr)
	assert.Len(t, questions, len(quizPool))
}

func TestGenerateQuizRejectsZeroCount(t *testing.T) {
	svc := NewResourceService(&fakeStorage{})

	_, appErr := svc.GenerateQuiz(context.Background(), 0)
	require.NotNil(t, appErr)
}

func TestGradeQuizScoresSubmission(t *testing.T) {
	svc := NewResourceService(&fakeStorage{})

	answers := []dto.QuizAnswer{
		{QuestionID: quizPool[0].ID, Choice: quizPool[0].Answer},
		{QuestionID: quizPool[1].ID, Choice: quizPool[1].Answer},
		{QuestionID: quizPool[2].ID, Choice: (quizPool[2].Answer + 1) % len(quizPool[2].Options)},
	}

	result, appErr := svc.GradeQuiz(context.Background(), &dto.GradeQuizRequest{Answers: answers})
	require.Nil(t, appErr)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 2, result.Correct)
}

func TestGradeQuizRejectsUnknownQuestion(t *testing.T) {
	svc := NewResourceService(&fakeStorage{})

	_, appErr := svc.GradeQuiz(context.Background(), &dto.GradeQuizRequest{
		Answers: []dto.QuizAnswer{{QuestionID: 99999, Choice: 0}},
	})
	require.NotNil(t, appErr)
}

func TestGradeQuizRejectsEmptySubmission(t *testing.T) {
	svc := NewResourceService(&fakeStorage{})

	_, appErr := svc.GradeQuiz(context.Background(), &dto.GradeQuizRequest{})
	require.NotNil(t, appErr)
}

func TestListMaterialsPresignsEachFile(t *testing.T) {
	svc := NewResourceService(&fakeStorage{})

	materials, appErr := svc.ListMaterials(context.Background())
	require.Nil(t, appErr)
	require.Len(t, materials, len(materialSeed))
	for i, m := range materials {
		assert.Equal(t, materialSeed[i].Name, m.Name)
		assert.Contains(t, m.DownloadURL, materialSeed[i].Key)
	}
}

func TestListMaterialsPropagatesStorageError(t *testing.T) {
	svc := NewResourceService(&fakeStorage{err: fmt.Errorf("presign failed")})

	_, appErr := svc.ListMaterials(context.Background())
	require.NotNil(t, appErr)
}

func TestQuizAnswersStayWithinOptions(t *testing.T) {
	for _, q := range quizPool {
		assert.GreaterOrEqual(t, q.Answer, 0)
		assert.Less(t, q.Answer, len(q.Options))
	}
}

func TestResourceSeedHasKnownTypes(t *testing.T) {
	svc := NewResourceService(&fakeStorage{})

	resources, appErr := svc.ListResources(context.Background())
	require.Nil(t, appErr)
	require.NotEmpty(t, resources)
	for _, r := range resources {
		assert.Contains(t,
			[]entity.ResourceType{entity.ResourceTypeMockTest, entity.ResourceTypeAIQuiz},
			r.Type)
	}
}
