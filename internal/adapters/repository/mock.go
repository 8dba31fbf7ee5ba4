package repository

import (
	"context"
	"easyref/internal/core/domain"
	"easyref/internal/core/port"

	"github.com/stretchr/testify/mock"
)

type MockTagRepository struct {
	mock.Mock
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{}
}

func (m *MockTagRepository) CreateMany(ctx context.Context, tags []string) (int, error) {
	args := m.Called(ctx, tags)
	return args.Int(0), args.Error(1)
}

func (m *MockTagRepository) FindByID(ctx context.Context, id int64) (*domain.Tag, error) {
	args := m.Called(ctx, id)
	tag, _ := args.Get(0).(*domain.Tag)
	return tag, args.Error(1)
}

func (m *MockTagRepository) FindByName(ctx context.Context, name string) (*domain.Tag, error) {
	args := m.Called(ctx, name)
	tag, _ := args.Get(0).(*domain.Tag)
	return tag, args.Error(1)
}

func (m *MockTagRepository) FindByNames(ctx context.Context, names []string) (map[string]domain.Tag, error) {
	args := m.Called(ctx, names)
	tags, _ := args.Get(0).(map[string]domain.Tag)
	return tags, args.Error(1)
}

func (m *MockTagRepository) List(ctx context.Context, limit int, marker *string) ([]domain.Tag, *string, error) {
	args := m.Called(ctx, limit, marker)
	tags, _ := args.Get(0).([]domain.Tag)
	next, _ := args.Get(1).(*string)
	return tags, next, args.Error(2)
}

type MockFileRepository struct {
	mock.Mock
}

func NewMockFileRepository() *MockFileRepository {
	return &MockFileRepository{}
}

func (m *MockFileRepository) Create(ctx context.Context, file *domain.File) error {
	args := m.Called(ctx, file)
	return args.Error(0)
}

func (m *MockFileRepository) FindByID(ctx context.Context, id int64) (*domain.File, error) {
	args := m.Called(ctx, id)
	file, _ := args.Get(0).(*domain.File)
	return file, args.Error(1)
}

func (m *MockFileRepository) FindByIDsForUpdate(ctx context.Context, ids []int64) ([]domain.File, error) {
	args := m.Called(ctx, ids)
	files, _ := args.Get(0).([]domain.File)
	return files, args.Error(1)
}

func (m *MockFileRepository) FindByIDs(ctx context.Context, ids []int64) (map[int64]domain.File, error) {
	args := m.Called(ctx, ids)
	files, _ := args.Get(0).(map[int64]domain.File)
	return files, args.Error(1)
}

func (m *MockFileRepository) List(ctx context.Context, skip, limit int) ([]domain.File, error) {
	args := m.Called(ctx, skip, limit)
	files, _ := args.Get(0).([]domain.File)
	return files, args.Error(1)
}

func (m *MockFileRepository) Search(ctx context.Context, filter domain.SearchFilter) ([]domain.File, error) {
	args := m.Called(ctx, filter)
	files, _ := args.Get(0).([]domain.File)
	return files, args.Error(1)
}

func (m *MockFileRepository) FindRandom(ctx context.Context) (*domain.File, error) {
	args := m.Called(ctx)
	file, _ := args.Get(0).(*domain.File)
	return file, args.Error(1)
}

func (m *MockFileRepository) ExistsByStorageKey(ctx context.Context, storageType domain.StorageType, key string) (bool, error) {
	args := m.Called(ctx, storageType, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockFileRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFileTagRepository struct {
	mock.Mock
}

func (m *MockFileTagRepository) Attach(ctx context.Context, fileID int64, tagIDs []int64) (int, error) {
	args := m.Called(ctx, fileID, tagIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockFileTagRepository) Detach(ctx context.Context, fileID int64, tagIDs []int64) (int, error) {
	args := m.Called(ctx, fileID, tagIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockFileTagRepository) FindByFileID(ctx context.Context, fileID int64) ([]domain.FileTag, error) {
	args := m.Called(ctx, fileID)
	links, _ := args.Get(0).([]domain.FileTag)
	return links, args.Error(1)
}

type MockMetadataRepository struct {
	mock.Mock
}

func (m *MockMetadataRepository) FindByFileID(ctx context.Context, fileID int64) (*domain.Metadata, error) {
	args := m.Called(ctx, fileID)
	meta, _ := args.Get(0).(*domain.Metadata)
	return meta, args.Error(1)
}

func (m *MockMetadataRepository) Upsert(ctx context.Context, metadata *domain.Metadata) error {
	args := m.Called(ctx, metadata)
	return args.Error(0)
}

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) Create(ctx context.Context, board *domain.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) FindByID(ctx context.Context, id int64) (*domain.Board, error) {
	args := m.Called(ctx, id)
	board, _ := args.Get(0).(*domain.Board)
	return board, args.Error(1)
}

func (m *MockBoardRepository) List(ctx context.Context) ([]domain.Board, error) {
	args := m.Called(ctx)
	boards, _ := args.Get(0).([]domain.Board)
	return boards, args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *domain.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBoardItemRepository struct {
	mock.Mock
}

func (m *MockBoardItemRepository) Create(ctx context.Context, item *domain.BoardItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockBoardItemRepository) FindByID(ctx context.Context, id int64) (*domain.BoardItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(*domain.BoardItem)
	return item, args.Error(1)
}

func (m *MockBoardItemRepository) FindByBoardIDs(ctx context.Context, boardIDs []int64) ([]domain.BoardItem, error) {
	args := m.Called(ctx, boardIDs)
	items, _ := args.Get(0).([]domain.BoardItem)
	return items, args.Error(1)
}

func (m *MockBoardItemRepository) Update(ctx context.Context, item *domain.BoardItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockBoardItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUnitOfWork runs fn against its own mocks. The error registered on Execute is returned
// after fn succeeds, which simulates a failed commit.
type MockUnitOfWork struct {
	mock.Mock
	tagRepo       *MockTagRepository
	fileRepo      *MockFileRepository
	fileTagRepo   *MockFileTagRepository
	metadataRepo  *MockMetadataRepository
	boardRepo     *MockBoardRepository
	boardItemRepo *MockBoardItemRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		tagRepo:       &MockTagRepository{},
		fileRepo:      &MockFileRepository{},
		fileTagRepo:   &MockFileTagRepository{},
		metadataRepo:  &MockMetadataRepository{},
		boardRepo:     &MockBoardRepository{},
		boardItemRepo: &MockBoardItemRepository{},
	}
}

func (m *MockUnitOfWork) TagRepo() port.TagRepository {
	return m.tagRepo
}

func (m *MockUnitOfWork) FileRepo() port.FileRepository {
	return m.fileRepo
}

func (m *MockUnitOfWork) FileTagRepo() port.FileTagRepository {
	return m.fileTagRepo
}

func (m *MockUnitOfWork) MetadataRepo() port.MetadataRepository {
	return m.metadataRepo
}

func (m *MockUnitOfWork) BoardRepo() port.BoardRepository {
	return m.boardRepo
}

func (m *MockUnitOfWork) BoardItemRepo() port.BoardItemRepository {
	return m.boardItemRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetTagRepoMock() *MockTagRepository {
	return m.tagRepo
}

func (m *MockUnitOfWork) GetFileRepoMock() *MockFileRepository {
	return m.fileRepo
}

func (m *MockUnitOfWork) GetFileTagRepoMock() *MockFileTagRepository {
	return m.fileTagRepo
}

func (m *MockUnitOfWork) GetMetadataRepoMock() *MockMetadataRepository {
	return m.metadataRepo
}

func (m *MockUnitOfWork) GetBoardRepoMock() *MockBoardRepository {
	return m.boardRepo
}

func (m *MockUnitOfWork) GetBoardItemRepoMock() *MockBoardItemRepository {
	return m.boardItemRepo
}
