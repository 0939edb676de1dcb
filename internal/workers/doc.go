// Package workers determines worker pool sizes for CPU-bound codec work in
// containerized environments.
//
// In containers the CPU budget may be limited by cgroup constraints. Go
// 1.19+ sets GOMAXPROCS from the container limit, while runtime.NumCPU()
// still reports the host's core count, so pool sizing goes through
// GOMAXPROCS here.
//
// The gateway bounds concurrent decode/resize/encode work with a semaphore
// sized via ForCPU, so codec work cannot monopolize the scheduler while
// request orchestration stays fully concurrent:
//
//	sem := make(chan struct{}, workers.ForCPU(8))
//
// The TRANSCODE_WORKERS environment variable overrides the automatic
// calculation.
package workers
