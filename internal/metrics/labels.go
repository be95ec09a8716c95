package metrics

const namespace = "blockinsight7000"

// statusLabel maps an operation outcome onto the status label value.
func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// chainLabel keeps collectors built without a chain name on a fixed label.
func chainLabel(chain string) string {
	if chain == "" {
		return "unknown"
	}
	return chain
}
