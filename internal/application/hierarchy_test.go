package application

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestHierarchyResolver(t *testing.T) {
	type lookup func(h *HierarchyResolver, id uint) (uint, error)
	tests := []struct {
		name     string
		expect   func(m *testMocks) *gomock.Call
		call     lookup
		notFound error
	}{
		{
			name:     "board",
			expect:   func(m *testMocks) *gomock.Call { return m.hierarchy.EXPECT().ProjectIDByBoard(uint(10)) },
			call:     (*HierarchyResolver).ProjectOfBoard,
			notFound: ErrBoardNotFound,
		},
		{
			name:     "column",
			expect:   func(m *testMocks) *gomock.Call { return m.hierarchy.EXPECT().ProjectIDByColumn(uint(10)) },
			call:     (*HierarchyResolver).ProjectOfColumn,
			notFound: ErrColumnNotFound,
		},
		{
			name:     "ticket",
			expect:   func(m *testMocks) *gomock.Call { return m.hierarchy.EXPECT().ProjectIDByTicket(uint(10)) },
			call:     (*HierarchyResolver).ProjectOfTicket,
			notFound: ErrTicketNotFound,
		},
		{
			name:     "comment",
			expect:   func(m *testMocks) *gomock.Call { return m.hierarchy.EXPECT().ProjectIDByComment(uint(10)) },
			call:     (*HierarchyResolver).ProjectOfComment,
			notFound: ErrCommentNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" resolves", func(t *testing.T) {
			m := setupMocks(t)
			tt.expect(m).Return(uint(3), nil)

			pid, err := tt.call(NewHierarchyResolver(m.repos), 10)
			require.NoError(t, err)
			assert.Equal(t, uint(3), pid)
		})

		t.Run(tt.name+" missing link", func(t *testing.T) {
			m := setupMocks(t)
			tt.expect(m).Return(uint(0), gorm.ErrRecordNotFound)

			_, err := tt.call(NewHierarchyResolver(m.repos), 10)
			assert.ErrorIs(t, err, tt.notFound)
			assert.ErrorIs(t, err, ErrNotFound)
		})

		t.Run(tt.name+" store failure", func(t *testing.T) {
			m := setupMocks(t)
			boom := errors.New("db down")
			tt.expect(m).Return(uint(0), boom)

			_, err := tt.call(NewHierarchyResolver(m.repos), 10)
			assert.ErrorIs(t, err, boom)
			assert.False(t, errors.Is(err, ErrNotFound))
		})
	}
}
