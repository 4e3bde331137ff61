package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"salonbook/internal/domain"
)

func TestIsFullName(t *testing.T) {
	assert.False(t, IsFullName("Ivan"))
	assert.True(t, IsFullName("Ivan P"))
	assert.False(t, IsFullName("Ivan "))
	assert.False(t, IsFullName("I P"))
	assert.True(t, IsFullName("Олена Коваль"))
}

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("1234567890"))
	assert.True(t, IsPhone(" 0671234567 "))
	assert.False(t, IsPhone("123456789"))
	assert.False(t, IsPhone("123abc7890"))
	assert.False(t, IsPhone("-123456789"))
	assert.False(t, IsPhone("12345678901"))
}

type request struct {
	Name  string `validate:"fullname"`
	Phone string `validate:"phone10"`
	Month int    `validate:"min=1,max=12"`
}

func TestStruct(t *testing.T) {
	assert.NoError(t, Struct(request{Name: "Ivan P", Phone: "1234567890", Month: 2}))

	err := Struct(request{Name: "Ivan", Phone: "12", Month: 13})
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "Month")
	assert.Contains(t, err.Error(), "Name")
	assert.Contains(t, err.Error(), "Phone")
}

func TestVar(t *testing.T) {
	assert.NoError(t, Var("Ivan P", "fullname"))
	assert.ErrorIs(t, Var("Ivan", "fullname"), domain.ErrValidation)
}
