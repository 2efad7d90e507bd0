package domain

type StageName string

const (
	Stage1 StageName = "stage1"
	Stage2 StageName = "stage2"
	Stage3 StageName = "stage3"
)

// AllStages lists the three stages in pipeline order.
var AllStages = []StageName{Stage1, Stage2, Stage3}

// StageTitles maps stage names to their display titles.
var StageTitles = map[StageName]string{
	Stage1: "Basic Info",
	Stage2: "Production Readiness",
	Stage3: "Service Readiness",
}

// ValidStageNames is the canonical set of accepted stage name strings.
var ValidStageNames = map[string]bool{
	"stage1": true, "stage2": true, "stage3": true,
}

type EventCategory string

const (
	CategoryLaunch     EventCategory = "launch"
	CategoryProduction EventCategory = "production"
	CategoryQuality    EventCategory = "quality"
	CategoryService    EventCategory = "service"
	CategoryAdmin      EventCategory = "admin"
)

type DeadlineBucket string

const (
	BucketOverdue   DeadlineBucket = "overdue"
	BucketToday     DeadlineBucket = "today"
	BucketUpcoming  DeadlineBucket = "upcoming"
	BucketCompleted DeadlineBucket = "completed"
)

type HorizonBucket string

const (
	HorizonImminent HorizonBucket = "imminent"
	HorizonSoon     HorizonBucket = "soon"
	HorizonFuture   HorizonBucket = "future"
)
