package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "brewblox-ctl"
	// RootShort is the short description for the root command.
	RootShort = "Brewblox host provisioning tool"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Create a Brewblox directory and install system dependencies"
	InstallLong  = "Create a Brewblox directory, install system dependencies, and reboot.\n\n" +
		"Brewblox can be installed multiple times on the same computer.\n" +
		"Settings and databases are stored in a Brewblox directory (default: ./brewblox).\n\n" +
		"A reboot is required after installing docker, or after adding the user to the 'docker' group.\n\n" +
		"By default, apt packages are downloaded using the apt package manager.\n" +
		"On systems without apt (eg. Synology NAS) this step is skipped,\n" +
		"and any missing libraries must be installed manually.\n\n" +
		"When the --snapshot ARCHIVE option is used, no fresh directory is created.\n" +
		"Instead, the directory in the snapshot is extracted."

	InstallFlagUseDefaults   = "Use default settings for installation"
	InstallFlagAptInstall    = "Update and install apt dependencies. Overrides --use-defaults if set"
	InstallFlagDockerInstall = "Install docker. Overrides --use-defaults if set"
	InstallFlagDockerUser    = "Add user to docker group. Overrides --use-defaults if set"
	InstallFlagDir           = "Brewblox directory"
	InstallFlagNoReboot      = "Do not reboot after install is done"
	InstallFlagRelease       = "Brewblox release track"
	InstallFlagSnapshot      = "Load a system snapshot generated by `brewblox-ctl snapshot save`"

	// InitUse is the init command name.
	InitUse   = "init"
	InitShort = "Create and initialize a Brewblox directory"

	InitFlagDir         = "Brewblox directory"
	InitFlagRelease     = "Brewblox release track"
	InitFlagForce       = "Do not prompt if directory already exists"
	InitFlagSkipConfirm = "Set the skip-confirm flag in the .env file"

	// FlashUse is the flash command name.
	FlashUse   = "flash"
	FlashShort = "Flash firmware on the Spark controller"
	FlashLong  = "Flash firmware on the Spark controller.\n\n" +
		"This requires the Spark to be connected over USB.\n" +
		"After the first install, firmware updates can also be installed using the UI."

	FlashFlagRelease = "Brewblox release track"
	FlashFlagPull    = "Pull the flasher image before use"

	// WifiUse is the wifi command name.
	WifiUse   = "wifi"
	WifiShort = "DISABLED: Configure Spark Wifi settings"

	WifiDisabledNotice = "This command is temporarily disabled"
	WifiDisabledGuide1 = "To set up Wifi, connect to the Spark over USB"
	WifiDisabledGuide2 = "On the Spark service page (actions, top right), you can configure Wifi settings"

	// ParticleUse is the particle command name.
	ParticleUse   = "particle"
	ParticleShort = "Start a container with access to the Particle CLI"

	ParticleFlagCommand = "Particle CLI command to run"
	ParticleShellHint   = "Type 'exit' and press enter to leave the shell"

	// EnableIPv6Use is the enable-ipv6 command name.
	EnableIPv6Use   = "enable-ipv6"
	EnableIPv6Short = "Enable IPv6 support in the docker daemon"

	EnableIPv6FlagConfigFile = "Path to docker daemon config. Defaults to /etc/docker/daemon.json"

	// SnapshotUse is the snapshot command group name.
	SnapshotUse   = "snapshot"
	SnapshotShort = "Save or load a snapshot of the Brewblox directory"

	SnapshotSaveUse   = "save"
	SnapshotSaveShort = "Create a snapshot of the Brewblox directory"
	SnapshotLoadUse   = "load"
	SnapshotLoadShort = "Load a snapshot of the Brewblox directory"

	SnapshotFlagDir   = "Brewblox directory"
	SnapshotFlagFile  = "Snapshot archive"
	SnapshotFlagForce = "Do not prompt before overwriting"

	// Aborted is printed when the operator declines a confirmation.
	Aborted = "Aborted."
)

// Prompt texts for install decisions.
const (
	PromptUseDefaults   = "Do you want to install with default settings?"
	PromptAptInstallFmt = "Do you want to install apt packages \"%s\"?"
	PromptDockerInstall = "Do you want to install docker?"
	PromptDockerUser    = "Do you want to run docker commands without sudo?"
	PromptDefaultDirFmt = "The default directory is '%s'. Do you want to continue?"
	PromptEraseDirFmt   = "The `%s` directory already exists. Do you want to continue and erase the current contents?"
	PromptRebootNotice  = "A reboot is required after installation. Do you want to be prompted before that happens?"
	PromptConfirmCmdFmt = "Do you want to run `%s`?"
	PromptRebootEnter   = "Press ENTER to reboot."
)
