package operator

// Operator tags.
const (
	TagSwitch                     = "switch"
	TagIf                         = "if"
	TagRandomProportion           = "random-proportion"
	TagMomentFormat               = "moment-format"
	TagInjectArr                  = "inject-arr"
	TagInjectArrAndTemplateRender = "inject-arr-and-template-render"
	TagArrayStrMapper             = "array-str-mapper"
	TagMomentRandomUniqueID       = "moment-random-unique-id"
	TagArraySelect                = "array-select"
	TagExistSelect                = "exist-select"
	TagSelectMD5                  = "select-md5"
	TagRandomNum                  = "random-num"
	TagStrMaxLenLimit             = "str-max-len-limit"
	TagStr2Num                    = "str-2-num"
	TagSplitStr2Arr               = "split-str-2-arr"
	TagStrReplace                 = "str-replace"
)

// Func is the signature shared by all operators.
type Func func(l *Library, p Params, source any) any

var builtins = map[string]Func{
	TagSwitch:                     switchOp,
	TagIf:                         ifOp,
	TagRandomProportion:           randomProportion,
	TagMomentFormat:               momentFormat,
	TagInjectArr:                  injectArrOp,
	TagInjectArrAndTemplateRender: injectArrAndTemplateRender,
	TagArrayStrMapper:             arrayStrMapper,
	TagMomentRandomUniqueID:       momentRandomUniqueID,
	TagArraySelect:                arraySelect,
	TagExistSelect:                existSelect,
	TagSelectMD5:                  selectMD5,
	TagRandomNum:                  randomNum,
	TagStrMaxLenLimit:             strMaxLenLimit,
	TagStr2Num:                    str2Num,
	TagSplitStr2Arr:               splitStr2Arr,
	TagStrReplace:                 strReplace,
}
