package config

import (
	"time"

	"periph.io/x/conn/v3/physic"
)

//Duration reads and writes durations as text like "50us".
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}

//Frequency reads and writes frequencies as text like "16MHz".
type Frequency physic.Frequency

func (f Frequency) MarshalText() ([]byte, error) {
	if f == 0 {
		return []byte("0Hz"), nil
	}
	return []byte(physic.Frequency(f).String()), nil
}

func (f *Frequency) UnmarshalText(text []byte) error {
	var v physic.Frequency
	if err := v.Set(string(text)); err != nil {
		return err
	}
	*f = Frequency(v)
	return nil
}
