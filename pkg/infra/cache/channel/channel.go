package channel

type Channel string

const (
	MaskFlowChannel Channel = "maskflow_events"
)
