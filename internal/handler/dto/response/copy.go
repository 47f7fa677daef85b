package response

import (
	"log/slog"

	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

var copyOption = copier.Option{
	IgnoreEmpty: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: decimal.Decimal{},
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(decimal.Decimal).StringFixed(2), nil
			},
		},
	},
}

// copyInto fills dst from a read model. Fields that do not map are left as is.
func copyInto(dst, src any) {
	if err := copier.CopyWithOption(dst, src, copyOption); err != nil {
		slog.Error("response mapping failed", "error", err)
	}
}
