package idmap // import "code.cloudfoundry.org/nix-user-chroot/idmap"

import (
	"fmt"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/nix-user-chroot/chroot"
	specs "github.com/opencontainers/runtime-spec/specs-go"
	errorspkg "github.com/pkg/errors"
)

const SelfProcDir = "/proc/self"

// Mapper installs a single-entry identity mapping for the calling process in
// its own, freshly created, user namespace.
type Mapper struct {
	procDir string
	policy  chroot.Policy
}

func NewMapper(procDir string, policy chroot.Policy) *Mapper {
	return &Mapper{
		procDir: procDir,
		policy:  policy,
	}
}

// IdentityMapping maps id onto itself.
func IdentityMapping(id int) specs.LinuxIDMapping {
	return specs.LinuxIDMapping{
		ContainerID: uint32(id),
		HostID:      uint32(id),
		Size:        1,
	}
}

func (m *Mapper) Map(logger lager.Logger, uid, gid int) error {
	logger = logger.Session("mapping-ids", lager.Data{"uid": uid, "gid": gid})
	logger.Debug("starting")
	defer logger.Debug("ending")

	// gid_map is not writable by an unprivileged process until setgroups is
	// denied. Older kernels lack the file altogether.
	if err := m.write("setgroups", "deny"); err != nil {
		if err := m.policy.Handle(logger, chroot.OpDenySetgroups, err); err != nil {
			return err
		}
	}

	if err := m.write("uid_map", formatMapping(IdentityMapping(uid))); err != nil {
		return m.policy.Handle(logger, chroot.OpWriteUIDMap, err)
	}

	if err := m.write("gid_map", formatMapping(IdentityMapping(gid))); err != nil {
		return m.policy.Handle(logger, chroot.OpWriteGIDMap, err)
	}

	return nil
}

func (m *Mapper) write(name, contents string) error {
	path := filepath.Join(m.procDir, name)

	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return errorspkg.Wrapf(err, "failed to open %s", path)
	}
	defer file.Close()

	if _, err := file.WriteString(contents); err != nil {
		return errorspkg.Wrapf(err, "failed to write to %s", path)
	}

	return nil
}

func formatMapping(mapping specs.LinuxIDMapping) string {
	return fmt.Sprintf("%d %d %d\n", mapping.ContainerID, mapping.HostID, mapping.Size)
}
