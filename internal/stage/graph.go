// Package stage defines the production pipeline and the per-type paths
// through it.
package stage

import "github.com/printflow/api/internal/model"

// typePaths maps each job type to the ordered stages it visits. Types not
// listed here fall back to the full pipeline. Stages a type never uses
// (pure copy work needs no Design pass, flat prints need no Finishing) are
// simply absent from its path.
var typePaths = map[model.JobType][]model.JobStage{
	model.JobTypePrint: {
		model.StageCounter, model.StageDesign, model.StageProduction,
		model.StageCashier, model.StageCompleted,
	},
	model.JobTypeXerox: {
		model.StageCounter, model.StageProduction,
		model.StageCashier, model.StageCompleted,
	},
	model.JobTypeDesign: {
		model.StageCounter, model.StageDesign,
		model.StageCashier, model.StageCompleted,
	},
	model.JobTypeBinding: {
		model.StageCounter, model.StageProduction, model.StageFinishing,
		model.StageCashier, model.StageCompleted,
	},
	model.JobTypeLargeFormat: model.StageOrder,
}

// PathFor returns the ordered stages a job of the given type visits.
func PathFor(jobType model.JobType) []model.JobStage {
	if path, ok := typePaths[jobType]; ok {
		return path
	}
	return model.StageOrder
}

// Next returns the stage that follows current for the given job type, and
// false when current is terminal. A job sitting on a stage outside its
// type's path (imported data, reassigned type) resumes at the next stage of
// the full pipeline order that the path contains.
func Next(current model.JobStage, jobType model.JobType) (model.JobStage, bool) {
	if current == model.StageCompleted {
		return "", false
	}

	path := PathFor(jobType)
	for i, s := range path {
		if s == current {
			return path[i+1], true
		}
	}

	// Stage not on this type's path: scan forward in pipeline order until a
	// stage on the path is found.
	for i := indexOf(current) + 1; i < len(model.StageOrder); i++ {
		for _, s := range path {
			if s == model.StageOrder[i] {
				return s, true
			}
		}
	}
	return "", false
}

func indexOf(s model.JobStage) int {
	for i, v := range model.StageOrder {
		if v == s {
			return i
		}
	}
	return -1
}
