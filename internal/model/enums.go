package model

// JobStage is one step of the production pipeline
type JobStage string

const (
	StageCounter    JobStage = "Counter"
	StageDesign     JobStage = "Design"
	StageProduction JobStage = "Production"
	StageFinishing  JobStage = "Finishing"
	StageCashier    JobStage = "Cashier"
	StageCompleted  JobStage = "Completed"
)

// StageOrder lists every stage in pipeline order. StageCompleted is terminal.
var StageOrder = []JobStage{
	StageCounter, StageDesign, StageProduction,
	StageFinishing, StageCashier, StageCompleted,
}

// JobType determines the effective path a job takes through the pipeline
type JobType string

const (
	JobTypePrint       JobType = "Print"
	JobTypeXerox       JobType = "Xerox"
	JobTypeDesign      JobType = "Design"
	JobTypeBinding     JobType = "Binding"
	JobTypeLargeFormat JobType = "LargeFormat"
)

var ValidJobTypes = []JobType{
	JobTypePrint, JobTypeXerox, JobTypeDesign,
	JobTypeBinding, JobTypeLargeFormat,
}

// Priority levels
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityNormal Priority = "Normal"
	PriorityUrgent Priority = "Urgent"
)

var ValidPriorities = []Priority{PriorityLow, PriorityNormal, PriorityUrgent}

// Role types for shop staff accounts
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleCounter    Role = "Counter"
	RoleDesigner   Role = "Designer"
	RoleProduction Role = "Production"
	RoleFinisher   Role = "Finisher"
	RoleCashier    Role = "Cashier"
)

var ValidRoles = []Role{
	RoleAdmin, RoleCounter, RoleDesigner,
	RoleProduction, RoleFinisher, RoleCashier,
}
