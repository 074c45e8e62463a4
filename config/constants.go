package constants

// External services
const (
	OPENAI_CHAT_URL   = "https://api.openai.com/v1/chat/completions"
	HEADER_USER_AGENT = "SysDash-CLI/1.0.0"
)

// Default insight thresholds (percent)
const (
	DEFAULT_CPU_THRESHOLD    = 80.0
	DEFAULT_MEMORY_THRESHOLD = 80.0
	DEFAULT_DISK_THRESHOLD   = 90.0
)

// Default assistant configuration
const (
	DEFAULT_OPENAI_MODEL = "gpt-4o"
	DEFAULT_MAX_TOKENS   = 4096

	SYSTEM_PROMPT = "You are an expert systems monitor. Provide useful overall insights " +
		"about the system and answer any questions the user has. Be brief and concise, " +
		"only elaborate when asked."
)

// File paths
const (
	CONFIG_DIR_NAME = "/.sysdash"
	LOG_FILE        = "/tmp/sysdash.log"
)
