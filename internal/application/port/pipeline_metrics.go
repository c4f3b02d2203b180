package port

// PipelineMetrics records pipeline activity for an observability backend.
type PipelineMetrics interface {
	ObserveTick(level string, score int)
	ObserveAlert(severity string)
	ObserveCommand(command string)
	SetAlertHistorySize(size int)
	ObserveUtterance()
	ObservePublishFailure()
}
