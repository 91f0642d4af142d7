package bookingtests

import (
	"net/http"

	"github.com/stretchr/testify/assert"
)

func DoLivenessTests(t *T) {
	t.Run("ping returns 201", func(t *T) {
		env := t.RequireEnvelope(t.Session().Get("/ping"))
		// the service signals liveness with 201, not 200
		assert.Equal(t, http.StatusCreated, env.Status)
		assert.True(t, env.OK)
	})
}
