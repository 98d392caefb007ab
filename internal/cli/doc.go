// Parses flags and configures logging for the relcut CLI.
//
// The CLI accepts the following flags:
//
//	-q, --quiet          Suppress informational output.
//	-d, --debug          Enable debug output.
//	-m, --manifest       Path to the project manifest.
//	-c, --config         Path to the configuration file.
//	-o, --output         Artifact output directory.
//	    --dry-run        Print the plan without building.
//	    --no-checksums   Skip SHA256SUMS generation.
//
// The release command is the default, so a bare "relcut" invocation runs the
// full pipeline. After parsing, the global logger is reconfigured to reflect
// the final level before the pipeline starts.
package cli
