package stage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/printflow/api/internal/model"
	"github.com/printflow/api/internal/stage"
)

func TestNext(t *testing.T) {
	tests := []struct {
		name    string
		current model.JobStage
		jobType model.JobType
		want    model.JobStage
		wantOK  bool
	}{
		{"print counter to design", model.StageCounter, model.JobTypePrint, model.StageDesign, true},
		{"print skips finishing", model.StageProduction, model.JobTypePrint, model.StageCashier, true},
		{"xerox skips design", model.StageCounter, model.JobTypeXerox, model.StageProduction, true},
		{"design job skips production", model.StageDesign, model.JobTypeDesign, model.StageCashier, true},
		{"binding skips design", model.StageCounter, model.JobTypeBinding, model.StageProduction, true},
		{"binding uses finishing", model.StageProduction, model.JobTypeBinding, model.StageFinishing, true},
		{"large format full pipeline", model.StageProduction, model.JobTypeLargeFormat, model.StageFinishing, true},
		{"cashier to completed", model.StageCashier, model.JobTypePrint, model.StageCompleted, true},
		{"completed is terminal", model.StageCompleted, model.JobTypePrint, "", false},
		{"unknown type falls back to full pipeline", model.StageFinishing, model.JobType("Lamination"), model.StageCashier, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := stage.Next(tt.current, tt.jobType)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNextOffPathStageResumes(t *testing.T) {
	// A xerox job imported while sitting in Design is not on the xerox
	// path; it should pick up at the next path stage in pipeline order.
	next, ok := stage.Next(model.StageDesign, model.JobTypeXerox)
	require.True(t, ok)
	assert.Equal(t, model.StageProduction, next)

	next, ok = stage.Next(model.StageFinishing, model.JobTypeXerox)
	require.True(t, ok)
	assert.Equal(t, model.StageCashier, next)
}

func TestNextIsPure(t *testing.T) {
	for i := 0; i < 3; i++ {
		got, ok := stage.Next(model.StageCounter, model.JobTypeBinding)
		require.True(t, ok)
		assert.Equal(t, model.StageProduction, got)
	}
}

func TestPathForEndsTerminal(t *testing.T) {
	for _, jt := range model.ValidJobTypes {
		path := stage.PathFor(jt)
		require.NotEmpty(t, path)
		assert.Equal(t, model.StageCounter, path[0])
		assert.Equal(t, model.StageCompleted, path[len(path)-1])
	}
}
