package directory

import "fmt"

// MaxSampleSize caps every list query.
const MaxSampleSize = 9

// MaxAmount clamps a requested amount to MaxSampleSize.
func MaxAmount(amount int) int {
	if amount < MaxSampleSize {
		return amount
	}
	return MaxSampleSize
}

// RandomSymbol returns one symbol drawn from AllSymbols.
func (d *Directory) RandomSymbol() (string, error) {
	return d.pick("symbols", d.AllSymbols())
}

// RandomSymbols draws MaxAmount(amount) symbols from AllSymbols, with replacement.
func (d *Directory) RandomSymbols(amount int) ([]string, error) {
	return d.sample("symbols", d.AllSymbols(), amount)
}

func (d *Directory) RandomStock() (string, error) {
	return d.pick("stocks", d.Stocks())
}

func (d *Directory) RandomStocks(amount int) ([]string, error) {
	return d.sample("stocks", d.Stocks(), amount)
}

// RandomCrypto returns one symbol drawn from AllCryptoSymbols.
func (d *Directory) RandomCrypto() (string, error) {
	return d.pick("crypto", d.AllCryptoSymbols())
}

func (d *Directory) RandomCryptos(amount int) ([]string, error) {
	return d.sample("crypto", d.AllCryptoSymbols(), amount)
}

func (d *Directory) pick(name string, pool []string) (string, error) {
	if len(pool) == 0 {
		return "", fmt.Errorf("random %s: %w", name, ErrEmptyPool)
	}

	d.rngMu.Lock()
	defer d.rngMu.Unlock()
	return pool[d.rng.IntN(len(pool))], nil
}

func (d *Directory) sample(name string, pool []string, amount int) ([]string, error) {
	if amount < 1 {
		return nil, fmt.Errorf("random %s: %w", name, ErrInvalidAmount)
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("random %s: %w", name, ErrEmptyPool)
	}

	out := make([]string, MaxAmount(amount))

	d.rngMu.Lock()
	defer d.rngMu.Unlock()
	for i := range out {
		out[i] = pool[d.rng.IntN(len(pool))]
	}
	return out, nil
}
