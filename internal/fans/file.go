package fans

import (
	"github.com/markusressel/hystfan/internal/util"
)

// FileFan writes the speed as a plain integer to a file, like hwmon pwm*
type FileFan struct {
	ID     string `json:"id"`
	Path   string `json:"path"`
	Atomic bool   `json:"atomic"`
}

func (fan FileFan) GetId() string {
	return fan.ID
}

func (fan FileFan) SetSpeed(speed int) error {
	var err error
	if fan.Atomic {
		err = util.WriteIntToFileAtomic(speed, fan.Path)
	} else {
		err = util.WriteIntToFile(speed, fan.Path)
	}
	if err != nil {
		return util.NewIoError("write fan", fan.Path, err)
	}
	return nil
}
