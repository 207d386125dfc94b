package validate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fred1edm/jaguarexpress/internal/core/ports"
)

func TestStruct_Valid(t *testing.T) {
	err := Struct(ports.LoginInput{Email: "ana@test.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestStruct_CollectsAllFields(t *testing.T) {
	err := Struct(ports.LoginInput{Email: "not-an-email", Password: "123"})
	require.Error(t, err)

	var fes FieldErrors
	require.True(t, errors.As(err, &fes))
	require.Len(t, fes, 2)

	assert.Equal(t, "email", fes[0].Field)
	assert.Equal(t, "email must be a valid email", fes[0].Message)
	assert.Equal(t, "password", fes[1].Field)
	assert.Equal(t, "password must be at least 6", fes[1].Message)
}

func TestStruct_RequiredMessage(t *testing.T) {
	err := Struct(ports.LoginInput{})
	require.Error(t, err)

	var fes FieldErrors
	require.True(t, errors.As(err, &fes))
	assert.Equal(t, "email is required", fes[0].Message)
}

func TestStruct_OneOf(t *testing.T) {
	in := ports.CreateOrderInput{
		MerchantID:      "m1",
		Lines:           []ports.OrderLine{{ProductID: "p1", Quantity: 1}},
		DeliveryAddress: "Calle 1",
		PaymentMethod:   "BITCOIN",
	}
	err := Struct(in)
	require.Error(t, err)

	var fes FieldErrors
	require.True(t, errors.As(err, &fes))
	require.Len(t, fes, 1)
	assert.Equal(t, "paymentmethod must be one of: EFECTIVO TARJETA TRANSFERENCIA", fes[0].Message)
}

func TestStruct_DivesIntoLines(t *testing.T) {
	in := ports.CreateOrderInput{
		MerchantID:      "m1",
		Lines:           []ports.OrderLine{{ProductID: "p1", Quantity: 0}},
		DeliveryAddress: "Calle 1",
		PaymentMethod:   "EFECTIVO",
	}
	err := Struct(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quantity")
}

func TestFieldErrors_JoinsMessages(t *testing.T) {
	fes := FieldErrors{
		{Field: "a", Message: "a is required"},
		{Field: "b", Message: "b is required"},
	}
	assert.Equal(t, "a is required; b is required", fes.Error())
}
