package sensors

import (
	"github.com/markusressel/hystfan/internal/util"
)

// FileSource reads a single integer in millidegrees from a file, like hwmon temp*_input
type FileSource struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

func (source FileSource) GetId() string {
	return source.ID
}

func (source FileSource) ReadRaw() (float64, error) {
	integer, err := util.ReadIntFromFile(source.Path)
	if err != nil {
		return 0, util.NewIoError("read sensor", source.Path, err)
	}
	return float64(integer) / MilliDegreesPerDegree, nil
}
