package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	bd := time.Date(1998, 3, 21, 15, 4, 5, 0, time.UTC)
	c, err := NewClient("11223344", ClientProfile{
		FirstName: "Rosa",
		LastName:  "Santos",
		Email:     "rosa@mail.com",
		BirthDate: &bd,
	})
	require.NoError(t, err)
	assert.Equal(t, "11223344", c.NationalID())
	assert.Equal(t, "Rosa", c.FirstName)
	assert.Equal(t, "Santos", c.LastName)
	assert.Equal(t, "rosa@mail.com", c.Email)
	assert.Zero(t, c.ID)
	require.NotNil(t, c.BirthDate)
	assert.Equal(t, time.Date(1998, 3, 21, 0, 0, 0, 0, time.UTC), *c.BirthDate)
}

func TestNewClient_BlankNationalID(t *testing.T) {
	for _, id := range []string{"", "   ", "\t"} {
		_, err := NewClient(id, ClientProfile{FirstName: "Rosa"})
		require.ErrorIs(t, err, ErrNationalIDRequired)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestClient_Clone(t *testing.T) {
	bd := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	c := RestoreClient(7, "123", ClientProfile{BirthDate: &bd})
	cp := c.Clone()
	*cp.BirthDate = cp.BirthDate.AddDate(1, 0, 0)
	assert.Equal(t, 1990, c.BirthDate.Year())
	assert.Equal(t, "123", cp.NationalID())
	assert.Equal(t, int64(7), cp.ID)
}
