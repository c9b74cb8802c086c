package stats

/*
This file defines all the metrics being collected.   As new metrics are added please follow this pattern.
*/

const (
	/************************* Scheduler metrics **************************/
	/*
		how long one scheduler tick takes (scan, filter, balance, dispatch)
	*/
	SchedStepLatency_ms = "schedStepLatency_ms"

	/*
		number of batches launched, any mode
	*/
	SchedBatchesDispatchedCounter = "batchesDispatchedCounter"

	/*
		number of batches launched per mode, suffixed with _<mode>
	*/
	SchedBatchesByModeCounter = "batchesByModeCounter"

	/*
		number of stage launches the runtime rejected with a zero handle
	*/
	SchedDispatchRejectedCounter = "dispatchRejectedCounter"

	/*
		number of times a target was marked bad because nothing fit
	*/
	SchedBadTargetCounter = "badTargetCounter"

	/*
		number of batches aborted because the timing plan had a negative delay
	*/
	SchedTimingAbortCounter = "timingAbortCounter"

	/*
		number of times every bad flag was cleared, by timer or by capacity growth
	*/
	SchedBadResetCounter = "badResetCounter"

	/*
		number of rescans triggered by unlock, capability or capacity growth
	*/
	SchedRescanCounter = "rescanCounter"

	/*
		number of GrantAccess calls that still failed after retries
	*/
	SchedGrantAccessFailedCounter = "grantAccessFailedCounter"

	/*
		number of targets being tracked
	*/
	SchedTrackedTargetsGauge = "trackedTargetsGauge"

	/*
		number of tracked targets currently marked bad
	*/
	SchedBadTargetsGauge = "badTargetsGauge"

	/*
		number of tracked targets with a batch in flight
	*/
	SchedInFlightTargetsGauge = "inFlightTargetsGauge"

	/*
		number of hosts in the pool
	*/
	SchedHostsGauge = "hostsGauge"

	/*
		total capacity of the host pool
	*/
	SchedPoolCapacityGauge = "poolCapacityGauge"

	/*
		number of deplete batches launched
	*/
	SchedDepleteBatchesCounter = "depleteBatchesCounter"
)
