package config

const (
	delimiter = "."

	ConfigPrefix = "config"

	ConfigHashTablePrefix         = ConfigPrefix + delimiter + "hashtable"
	ConfigHashTableInitialBuckets = ConfigHashTablePrefix + delimiter + "initial_buckets"

	ConfigLogPrefix = ConfigPrefix + delimiter + "log"
	ConfigLogLevel  = ConfigLogPrefix + delimiter + "level"

	ConfigWordFreqPrefix = ConfigPrefix + delimiter + "wordfreq"
	ConfigWordFreqTop    = ConfigWordFreqPrefix + delimiter + "top"
	ConfigWordFreqHash   = ConfigWordFreqPrefix + delimiter + "hash"
)
