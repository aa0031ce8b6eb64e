package ir

// BinaryKey is the single field of the JSON placeholder object standing
// for a binary blob; its value is the base64 text of the blob.
const BinaryKey = "__binary_content__"

func FromBinary(b64 string) *Node {
	return FromKeyVals([]KeyVal{{Key: BinaryKey, Val: FromString(b64)}})
}

// IsBinary reports whether y is a binary placeholder object.
func IsBinary(y *Node) bool {
	if y == nil || y.Type != ObjectType || len(y.Fields) != 1 {
		return false
	}
	return y.Fields[0].String == BinaryKey && y.Values[0].Type == StringType
}
