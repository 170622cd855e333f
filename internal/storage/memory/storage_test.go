package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

func (s *StorageSuite) TestGetAbsentKeyReturnsNil() {
	data, err := s.storage.Get(s.ctx, "teams")
	s.Require().NoError(err)
	s.Nil(data)
}

func (s *StorageSuite) TestSetThenGet() {
	err := s.storage.Set(s.ctx, "teams", []byte(`[{"id":"team-1"}]`))
	s.Require().NoError(err)

	data, err := s.storage.Get(s.ctx, "teams")
	s.Require().NoError(err)
	s.Equal(`[{"id":"team-1"}]`, string(data))
}

func (s *StorageSuite) TestSetReplacesWholeValue() {
	_ = s.storage.Set(s.ctx, "teams", []byte(`[1,2,3]`))
	_ = s.storage.Set(s.ctx, "teams", []byte(`[]`))

	data, err := s.storage.Get(s.ctx, "teams")
	s.Require().NoError(err)
	s.Equal(`[]`, string(data))
}

func (s *StorageSuite) TestRemove() {
	_ = s.storage.Set(s.ctx, "session", []byte("user-1"))

	err := s.storage.Remove(s.ctx, "session")
	s.Require().NoError(err)

	data, err := s.storage.Get(s.ctx, "session")
	s.Require().NoError(err)
	s.Nil(data)
}

func (s *StorageSuite) TestRemoveAbsentKeyIsNoop() {
	err := s.storage.Remove(s.ctx, "never-written")
	s.NoError(err)
}

func (s *StorageSuite) TestStoredValueIsCopied() {
	original := []byte("abc")
	_ = s.storage.Set(s.ctx, "key", original)

	original[0] = 'z'

	data, err := s.storage.Get(s.ctx, "key")
	s.Require().NoError(err)
	s.Equal("abc", string(data))
}
