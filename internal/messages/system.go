package messages

// Notices and errors emitted while probing and mutating the host.
const (
	InfoAptMissing       = "Apt is not available. You may need to find another way to install dependencies."
	InfoAptDepsFmt       = "Apt packages: \"%s\""
	InfoDockerPresent    = "Docker is already installed."
	InfoDockerUserFmt    = "%s already belongs to the docker group."
	InfoAptInstalling    = "Installing apt packages..."
	InfoDockerInstalling = "Installing docker..."
	InfoDockerUserAddFmt = "Adding %s to 'docker' group..."
	InfoDone             = "Done!"
	InfoRebootCountdown  = "Rebooting in 10 seconds..."

	SkippedAptInstall    = "Skipped: apt install."
	SkippedDockerInstall = "Skipped: docker install."
	SkippedDockerUserFmt = "Skipped: adding %s to 'docker' group."
	SkippedReboot        = "Skipped: reboot."

	InfoCreatingDirFmt = "Creating Brewblox directory `%s`..."
	InfoWritingEnv     = "Setting variables in .env file..."
	InfoEnvChanges     = "Changes to .env:"

	DirNotManagedFmt = "`%s` exists and is not empty, but does not look like a Brewblox directory. " +
		"Remove it manually if you are sure its contents are expendable."

	InfoPullingFlasher = "Pulling flasher image..."
	InfoStoppingStack  = "Stopping services..."
	InfoStoppingNamed  = "Stopping services (%s)..."
	InfoFlashingSpark  = "Flashing Spark..."
	InfoStartingShell  = "Starting Particle image..."
	WarnDaemonNotUp    = "Warning: the docker daemon does not appear to be running."
	ErrNoSparkUSB      = "no Spark detected on USB; connect the Spark over USB and try again"

	InfoIPv6Present    = "IPv6 is already enabled in the docker daemon config."
	InfoIPv6ConfigFmt  = "Updating docker daemon config `%s`..."
	WarnIPv6Restart    = "Warning: failed to restart the docker daemon; changes apply after the next restart."
	ErrIPv6ConfigFmt   = "read docker daemon config %s: %w"
	ErrIPv6InvalidFmt  = "parse docker daemon config %s: %w"
	ErrIPv6MarshalFmt  = "encode docker daemon config: %w"
	ErrIPv6WriteFmt    = "write docker daemon config %s: %w"
	InfoSnapshotLoad   = "Loading snapshot..."
	InfoSnapshotSave   = "Saving snapshot..."
	ErrSnapshotMissing = "snapshot archive %s does not exist"
)
