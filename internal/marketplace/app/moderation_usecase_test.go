package app_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notemarket/internal/marketplace/app"
	"notemarket/internal/marketplace/domain/entities"
)

func TestListPending(t *testing.T) {
	pendingNotes := []*entities.Note{
		{ID: 1, Title: "Calculus II", Status: entities.StatusPending},
		{ID: 2, Title: "Linear Algebra", Status: entities.StatusPending},
	}

	t.Run("returns all pending notes", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("ListByStatus", mock.Anything, entities.StatusPending, 0, 0).Return(pendingNotes, nil).Once()

		useCase := app.NewModerationUseCase(noteRepo, nil)

		notes, err := useCase.ListPending(context.Background())

		require.NoError(t, err)
		assert.Equal(t, pendingNotes, notes)
		noteRepo.AssertExpectations(t)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("ListByStatus", mock.Anything, entities.StatusPending, 0, 0).Return(nil, errors.New("database error")).Once()

		useCase := app.NewModerationUseCase(noteRepo, nil)

		notes, err := useCase.ListPending(context.Background())

		require.Error(t, err)
		assert.Nil(t, notes)
	})
}

func TestApproveAndReject(t *testing.T) {
	t.Run("approve sets approved status", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("UpdateStatus", mock.Anything, int64(3), entities.StatusApproved).Return(int64(1), nil).Once()

		useCase := app.NewModerationUseCase(noteRepo, nil)

		require.NoError(t, useCase.Approve(context.Background(), 3))
		noteRepo.AssertExpectations(t)
	})

	t.Run("reject sets rejected status", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("UpdateStatus", mock.Anything, int64(3), entities.StatusRejected).Return(int64(1), nil).Once()

		useCase := app.NewModerationUseCase(noteRepo, nil)

		require.NoError(t, useCase.Reject(context.Background(), 3))
		noteRepo.AssertExpectations(t)
	})

	t.Run("nonexistent note id still succeeds", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("UpdateStatus", mock.Anything, int64(404), entities.StatusApproved).Return(int64(0), nil).Once()

		useCase := app.NewModerationUseCase(noteRepo, nil)

		require.NoError(t, useCase.Approve(context.Background(), 404))
		noteRepo.AssertExpectations(t)
	})

	t.Run("status change invalidates the catalog cache", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		catalogCache := new(mockCache)

		noteRepo.On("UpdateStatus", mock.Anything, int64(3), entities.StatusApproved).Return(int64(1), nil).Once()
		catalogCache.On("Delete", mock.Anything, approvedNotesCacheKey).Return(nil).Once()

		useCase := app.NewModerationUseCase(noteRepo, catalogCache)

		require.NoError(t, useCase.Approve(context.Background(), 3))
		catalogCache.AssertExpectations(t)
	})

	t.Run("cache invalidation failure does not fail moderation", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		catalogCache := new(mockCache)

		noteRepo.On("UpdateStatus", mock.Anything, int64(3), entities.StatusRejected).Return(int64(1), nil).Once()
		catalogCache.On("Delete", mock.Anything, approvedNotesCacheKey).Return(errors.New("redis down")).Once()

		useCase := app.NewModerationUseCase(noteRepo, catalogCache)

		require.NoError(t, useCase.Reject(context.Background(), 3))
	})

	t.Run("update error is propagated", func(t *testing.T) {
		noteRepo := new(mockNoteRepository)
		noteRepo.On("UpdateStatus", mock.Anything, int64(3), entities.StatusApproved).Return(int64(0), errors.New("database error")).Once()

		useCase := app.NewModerationUseCase(noteRepo, nil)

		err := useCase.Approve(context.Background(), 3)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database error")
	})
}
