package guard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/casaplex/casaplex/internal/shared/errors"
)

func TestChain_AllPass(t *testing.T) {
	called := 0
	pass := func(context.Context) error {
		called++
		return nil
	}

	err := Chain(context.Background(), pass, pass, pass)

	assert.NoError(t, err)
	assert.Equal(t, 3, called)
}

func TestChain_StopsAtFirstFailure(t *testing.T) {
	var order []string
	pass := func(context.Context) error {
		order = append(order, "pass")
		return nil
	}
	fail := func(context.Context) error {
		order = append(order, "fail")
		return errors.NewForbiddenError("not yours")
	}
	never := func(context.Context) error {
		order = append(order, "never")
		return nil
	}

	err := Chain(context.Background(), pass, fail, never)

	assert.True(t, errors.IsForbiddenError(err))
	assert.Equal(t, []string{"pass", "fail"}, order)
}

func TestChain_NilGuardsSkipped(t *testing.T) {
	err := Chain(context.Background(), nil, nil)
	assert.NoError(t, err)
}

func TestWhen(t *testing.T) {
	quota := Static(errors.NewQuotaRequiredError("subscription required"))

	assert.Nil(t, When(false, quota), "operator bypass should drop the guard")

	err := Chain(context.Background(), When(true, quota))
	assert.True(t, errors.IsQuotaRequiredError(err))
}
