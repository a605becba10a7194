//go:build unit

package usecase_test

import (
	"context"
	"testing"

	"makespace/internal/domain/booking"
	"makespace/internal/infra"
	"makespace/internal/infra/repository"
	"makespace/internal/pkg/uuidgen"
	"makespace/internal/usecase"
	"makespace/tests/common/builder"
	usecasemock "makespace/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogUseCaseTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockCtrl    *gomock.Controller
	mockRooms   *usecasemock.MockRoomRepository
	mockBuffers *usecasemock.MockBufferTimeRepository
	fixedID     uuid.UUID
	useCase     usecase.CatalogUseCase
}

func (s *CatalogUseCaseTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRooms = usecasemock.NewMockRoomRepository(s.mockCtrl)
	s.mockBuffers = usecasemock.NewMockBufferTimeRepository(s.mockCtrl)
	s.fixedID = uuid.MustParse("0d7f9c44-52be-4f8e-8a3d-24ce1f2b9a02")
	s.useCase = usecase.NewCatalogUseCase(
		s.mockRooms,
		s.mockBuffers,
		uuidgen.NewSequenceGenerator(s.fixedID, uuid.New(), uuid.New()),
	)
}

func (s *CatalogUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CatalogUseCaseTestSuite))
}

func (s *CatalogUseCaseTestSuite) TestListRooms() {
	s.Run("returns catalog order untouched", func() {
		expected := []booking.Room{
			builder.MustRoom("Creativity", 20),
			builder.MustRoom("Amaze", 3),
		}
		s.mockRooms.EXPECT().FindAll(gomock.Any()).Return(expected, nil)

		actual, err := s.useCase.ListRooms(s.ctx)

		s.Require().NoError(err)
		s.Equal(expected, actual)
	})

	s.Run("read failure surfaces as database error", func() {
		s.mockRooms.EXPECT().FindAll(gomock.Any()).Return(nil, infra.WrapRepoErr("boom", nil))

		_, err := s.useCase.ListRooms(s.ctx)

		s.Require().ErrorIs(err, usecase.ErrDatabaseOperationFailed)
	})
}

func (s *CatalogUseCaseTestSuite) TestCreateRoom() {
	room := builder.MustRoom("Amaze", 3)

	s.Run("created", func() {
		s.mockRooms.EXPECT().Create(gomock.Any(), room).Return(nil)

		res, err := s.useCase.CreateRoom(s.ctx, room)

		s.Require().NoError(err)
		s.Require().True(res.IsSuccess())
		s.Equal(room, res.Value())
	})

	s.Run("duplicate name is a business failure", func() {
		s.mockRooms.EXPECT().Create(gomock.Any(), room).
			Return(infra.WrapRepoErr("duplicate", nil, infra.KindConflict))

		res, err := s.useCase.CreateRoom(s.ctx, room)

		s.Require().NoError(err)
		s.Require().True(res.IsFailure())
		s.Require().ErrorIs(res.Err(), usecase.ErrRoomAlreadyExists)
	})
}

func (s *CatalogUseCaseTestSuite) TestBufferTimes() {
	slot := builder.MustSlot("09:00", "09:45")

	s.Run("add assigns a generated id", func() {
		s.mockBuffers.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		res, err := s.useCase.AddBufferTime(s.ctx, slot)

		s.Require().NoError(err)
		s.Require().True(res.IsSuccess())
		s.Equal(s.fixedID, res.Value().ID)
		s.Equal(slot, res.Value().Slot)
	})

	s.Run("duplicate window is a business failure", func() {
		s.mockBuffers.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate", nil, infra.KindConflict))

		res, err := s.useCase.AddBufferTime(s.ctx, slot)

		s.Require().NoError(err)
		s.Require().True(res.IsFailure())
		s.Require().ErrorIs(res.Err(), usecase.ErrBufferAlreadyExists)
	})

	s.Run("list passes windows through", func() {
		expected := []repository.BufferWindow{{ID: uuid.New(), Slot: slot}}
		s.mockBuffers.EXPECT().FindAll(gomock.Any()).Return(expected, nil)

		actual, err := s.useCase.ListBufferTimes(s.ctx)

		s.Require().NoError(err)
		s.Equal(expected, actual)
	})

	s.Run("remove reports missing windows", func() {
		id := uuid.New()
		s.mockBuffers.EXPECT().DeleteByID(gomock.Any(), id).Return(int64(0), nil)

		res, err := s.useCase.RemoveBufferTime(s.ctx, id)

		s.Require().NoError(err)
		s.Require().True(res.IsFailure())
		s.Require().ErrorIs(res.Err(), usecase.ErrBufferNotFound)
	})

	s.Run("remove deletes an existing window", func() {
		id := uuid.New()
		s.mockBuffers.EXPECT().DeleteByID(gomock.Any(), id).Return(int64(1), nil)

		res, err := s.useCase.RemoveBufferTime(s.ctx, id)

		s.Require().NoError(err)
		s.True(res.IsSuccess())
	})
}
