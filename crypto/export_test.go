package crypto

func DecodeBulletproofPlus(proof []byte) error {
	_, err := decodeBulletproofPlus(proof)
	return err
}
