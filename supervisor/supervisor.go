package supervisor // import "code.cloudfoundry.org/nix-user-chroot/supervisor"

import (
	"fmt"
	"os"
	"os/signal"
	"sync"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/nix-user-chroot/chroot"
	errorspkg "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

type State int

const (
	Running State = iota
	Stopped
	Exited
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ForwardedSignals are relayed to the child. SwallowedSignals already reach
// it through the terminal's foreground process group.
var (
	ForwardedSignals = []os.Signal{unix.SIGTERM, unix.SIGHUP}
	SwallowedSignals = []os.Signal{unix.SIGINT, unix.SIGQUIT}
)

//go:generate counterfeiter . Waiter
//go:generate counterfeiter . Signaller

type Waiter interface {
	Wait(pid int) (unix.WaitStatus, error)
}

type Signaller interface {
	Signal(pid int, sig unix.Signal) error
}

type Wait4Waiter struct{}

func (Wait4Waiter) Wait(pid int) (unix.WaitStatus, error) {
	var status unix.WaitStatus
	for {
		_, err := unix.Wait4(pid, &status, unix.WUNTRACED, nil)
		if err == unix.EINTR {
			continue
		}
		return status, err
	}
}

type KillSignaller struct{}

func (KillSignaller) Signal(pid int, sig unix.Signal) error {
	return unix.Kill(pid, sig)
}

type Supervisor struct {
	waiter    Waiter
	signaller Signaller
	self      int

	signals  <-chan os.Signal
	notified chan os.Signal

	stateMutex sync.Mutex
	state      State
}

// New returns a Supervisor that has already started catching the relayed
// and swallowed signals, so it must be created before the child is started.
func New(logger lager.Logger, waiter Waiter, signaller Signaller) *Supervisor {
	notified := make(chan os.Signal, 8)
	signal.Notify(notified, append(append([]os.Signal{}, ForwardedSignals...), SwallowedSignals...)...)

	logger.Debug("catching-signals", lager.Data{
		"forwarded": ForwardedSignals,
		"swallowed": SwallowedSignals,
	})

	s := NewWithSignals(waiter, signaller, notified)
	s.notified = notified
	return s
}

func NewWithSignals(waiter Waiter, signaller Signaller, signals <-chan os.Signal) *Supervisor {
	return &Supervisor{
		waiter:    waiter,
		signaller: signaller,
		self:      os.Getpid(),
		signals:   signals,
		state:     Running,
	}
}

func (s *Supervisor) State() State {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()
	return s.state
}

func (s *Supervisor) setState(logger lager.Logger, state State) {
	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()
	logger.Debug("state-changed", lager.Data{"from": s.state.String(), "to": state.String()})
	s.state = state
}

// Supervise waits for the child to terminate, mirroring its job control
// stops onto the supervisor itself.
func (s *Supervisor) Supervise(logger lager.Logger, pid int) chroot.Result {
	logger = logger.Session("supervising", lager.Data{"pid": pid})
	logger.Debug("starting")
	defer logger.Debug("ending")

	stopRelay := s.relay(logger, pid)
	defer stopRelay()

	for {
		status, err := s.waiter.Wait(pid)
		if err != nil {
			return s.anomaly(logger, errorspkg.Wrapf(err, "waiting for child %d", pid))
		}

		switch {
		case status.Stopped():
			s.setState(logger, Stopped)
			logger.Info("child-stopped", lager.Data{"signal": status.StopSignal().String()})

			// Execution resumes here once someone continues the supervisor.
			if err := s.signaller.Signal(s.self, unix.SIGSTOP); err != nil {
				logger.Error("stopping-self-failed", err)
			}
			if err := s.signaller.Signal(pid, unix.SIGCONT); err != nil {
				logger.Error("continuing-child-failed", err)
			}
			s.setState(logger, Running)

		case status.Signaled():
			s.setState(logger, Exited)
			logger.Info("child-signaled", lager.Data{"signal": status.Signal().String()})
			return chroot.Result{
				ExitStatus: chroot.FallbackExitStatus,
				Signal:     status.Signal(),
			}

		case status.Exited():
			s.setState(logger, Exited)
			logger.Debug("child-exited", lager.Data{"status": status.ExitStatus()})
			return chroot.Result{ExitStatus: status.ExitStatus()}

		default:
			return s.anomaly(logger, errorspkg.Errorf("unexpected wait status %#x for child %d", uint32(status), pid))
		}
	}
}

func (s *Supervisor) anomaly(logger lager.Logger, err error) chroot.Result {
	logger.Error("supervision-failed", err)
	s.setState(logger, Exited)
	return chroot.Result{
		ExitStatus: chroot.FallbackExitStatus,
		Anomaly:    err,
	}
}

func (s *Supervisor) relay(logger lager.Logger, pid int) func() {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		for {
			select {
			case <-done:
				return
			case sig := <-s.signals:
				s.handleSignal(logger, pid, sig)
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}

func (s *Supervisor) handleSignal(logger lager.Logger, pid int, sig os.Signal) {
	data := lager.Data{"signal": sig.String()}

	unixSig, ok := sig.(unix.Signal)
	if !ok || !isForwarded(sig) {
		logger.Debug("signal-swallowed", data)
		return
	}

	if err := s.signaller.Signal(pid, unixSig); err != nil {
		logger.Error("forwarding-signal-failed", err, data)
		return
	}
	logger.Debug("signal-forwarded", data)
}

func isForwarded(sig os.Signal) bool {
	for _, forwarded := range ForwardedSignals {
		if forwarded == sig {
			return true
		}
	}
	return false
}

// Stop releases the signals caught by New.
func (s *Supervisor) Stop() {
	if s.notified != nil {
		signal.Stop(s.notified)
	}
}

// Raise terminates the supervisor with sig, under the signal's default
// disposition. It only returns if sig does not kill the process.
func (s *Supervisor) Raise(logger lager.Logger, sig unix.Signal) {
	data := lager.Data{"signal": sig.String()}
	logger.Debug("raising-signal", data)

	s.Stop()
	if err := DieFromSignal(sig); err != nil {
		logger.Error("raising-signal-failed", err, data)
		return
	}
	logger.Info("survived-signal", data)
}
