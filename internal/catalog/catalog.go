// Package catalog holds the static exercise reference data. Entries are
// immutable; logged instances copy from them and carry their own ids.
package catalog

import "github.com/claude/liftflow/internal/models"

// Exercises is the full catalog, grouped by body part.
var Exercises = []models.Exercise{
	// 胸部
	{ID: "bench_press", Name: "槓鈴臥推", Part: "胸部", Type: "Compound", Tips: "肩胛骨後收下沈，手肘與身體呈 45-75 度，足底踩實地面。", IconColor: "bg-blue-500"},
	{ID: "db_bench_press", Name: "啞鈴臥推", Part: "胸部", Type: "Compound", Tips: "增加活動範圍，感受胸大肌拉伸，頂峰時稍微內夾。", IconColor: "bg-blue-400"},
	{ID: "incline_bench", Name: "上斜槓鈴臥推", Part: "胸部", Type: "Compound", Tips: "針對上胸，椅背約 30-45 度，落點在鎖骨下方。", IconColor: "bg-blue-600"},
	{ID: "db_incline", Name: "上斜啞鈴臥推", Part: "胸部", Type: "Isolation", Tips: "椅背 30-45 度，專注上胸收縮，離心下放慢。", IconColor: "bg-indigo-500"},
	{ID: "decline_bench", Name: "下斜臥推", Part: "胸部", Type: "Compound", Tips: "針對下胸，注意握距與落點，避免肩膀壓力過大。", IconColor: "bg-blue-700"},
	{ID: "machine_chest_press", Name: "機械式推胸", Part: "胸部", Type: "Machine", Tips: "背部貼緊椅背，握把高度約在胸線位置。", IconColor: "bg-blue-300"},
	{ID: "cable_fly", Name: "滑輪夾胸", Part: "胸部", Type: "Isolation", Tips: "保持手肘微彎固定，專注胸肌收縮，想像要環抱一棵大樹。", IconColor: "bg-cyan-500"},
	{ID: "pec_deck", Name: "蝴蝶機夾胸", Part: "胸部", Type: "Machine", Tips: "手肘高度與肩膀平行或略低，專注胸肌內側擠壓。", IconColor: "bg-cyan-600"},
	{ID: "dips_chest", Name: "雙槓體撐 (胸)", Part: "胸部", Type: "Bodyweight", Tips: "身體前傾，手肘外開，感受下胸拉伸。", IconColor: "bg-indigo-400"},

	// 背部
	{ID: "deadlift", Name: "傳統硬舉", Part: "背部", Type: "Compound", Tips: "槓鈴貼近小腿，先屈髖再屈膝，拉起時臀部夾緊。", IconColor: "bg-yellow-500"},
	{ID: "pull_up", Name: "引體向上", Part: "背部", Type: "Bodyweight", Tips: "核心收緊，啟動時先下壓肩胛骨，將胸口拉向單槓。", IconColor: "bg-amber-500"},
	{ID: "lat_pull", Name: "滑輪下拉", Part: "背部", Type: "Cable", Tips: "挺胸，手肘下拉至腰際，肩胛骨主導動作。", IconColor: "bg-purple-500"},
	{ID: "db_row", Name: "單臂啞鈴划船", Part: "背部", Type: "Isolation", Tips: "背部打直，將啞鈴拉向髖關節位置，感受背闊肌收縮。", IconColor: "bg-purple-400"},
	{ID: "seated_row", Name: "坐姿划船", Part: "背部", Type: "Cable", Tips: "挺胸不聳肩，將把手拉向肚臍，感受背肌擠壓。", IconColor: "bg-violet-500"},
	{ID: "t_bar_row", Name: "T Bar 划船", Part: "背部", Type: "Compound", Tips: "核心收緊，背部保持平直，避免下背借力代償。", IconColor: "bg-yellow-600"},
	{ID: "straight_arm_pulldown", Name: "直臂下壓", Part: "背部", Type: "Cable", Tips: "手臂微彎固定，專注背闊肌將重量壓向大腿。", IconColor: "bg-purple-600"},
	{ID: "machine_row", Name: "機械划船", Part: "背部", Type: "Machine", Tips: "胸口貼緊靠墊，專注肩胛骨後收。", IconColor: "bg-violet-400"},

	// 腿部
	{ID: "squat", Name: "槓鈴深蹲", Part: "腿部", Type: "Compound", Tips: "核心繃緊，髖膝同時啟動，膝蓋對準腳尖方向。", IconColor: "bg-red-500"},
	{ID: "front_squat", Name: "前頸深蹲", Part: "腿部", Type: "Compound", Tips: "手肘抬高，軀幹保持直立，更專注於股四頭肌。", IconColor: "bg-red-600"},
	{ID: "goblet_squat", Name: "高腳杯深蹲", Part: "腿部", Type: "Compound", Tips: "雙手捧住啞鈴貼胸，下蹲時保持挺胸。", IconColor: "bg-orange-700"},
	{ID: "leg_press", Name: "腿推舉", Part: "腿部", Type: "Machine", Tips: "背部緊貼椅背，不要鎖死膝蓋，專注大腿前側發力。", IconColor: "bg-red-400"},
	{ID: "rdl", Name: "羅馬尼亞硬舉", Part: "腿部", Type: "Compound", Tips: "膝蓋微彎固定，屁股向後推，感受大腿後側拉伸。", IconColor: "bg-yellow-700"},
	{ID: "leg_extension", Name: "坐姿腿屈伸", Part: "腿部", Type: "Isolation", Tips: "針對股四頭肌，動作頂端停留 1 秒感受收縮，控制下放。", IconColor: "bg-red-600"},
	{ID: "leg_curl", Name: "俯臥腿後勾", Part: "腿部", Type: "Isolation", Tips: "臀部貼緊椅墊，勾起時不要用腰借力。", IconColor: "bg-rose-500"},
	{ID: "lunges", Name: "啞鈴弓箭步", Part: "腿部", Type: "Compound", Tips: "軀幹保持正直，後腳膝蓋接近地面但不觸地。", IconColor: "bg-rose-400"},
	{ID: "bulgarian_split_squat", Name: "保加利亞分腿蹲", Part: "腿部", Type: "Compound", Tips: "後腳置於板凳，身體微前傾，專注前腳發力。", IconColor: "bg-red-700"},
	{ID: "hip_thrust", Name: "槓鈴臀推", Part: "腿部", Type: "Compound", Tips: "下巴收緊，利用臀部力量將槓鈴推起至身體呈一直線。", IconColor: "bg-pink-700"},
	{ID: "calf_raise", Name: "提踵 (小腿)", Part: "腿部", Type: "Isolation", Tips: "腳跟盡可能下放拉伸，再用力踮起至最高點。", IconColor: "bg-stone-500"},

	// 肩膀
	{ID: "ohp", Name: "站姿肩推", Part: "肩膀", Type: "Compound", Tips: "臀部夾緊，核心收緊，槓鈴路徑垂直向上，頭部適時閃避。", IconColor: "bg-orange-500"},
	{ID: "db_shoulder_press", Name: "坐姿啞鈴肩推", Part: "肩膀", Type: "Compound", Tips: "核心穩定，不要過度拱腰，推至頭頂上方。", IconColor: "bg-orange-300"},
	{ID: "lateral_raise", Name: "啞鈴側平舉", Part: "肩膀", Type: "Isolation", Tips: "針對中束，手肘微彎，像倒水一樣將啞鈴舉起，不要聳肩。", IconColor: "bg-orange-400"},
	{ID: "front_raise", Name: "啞鈴前平舉", Part: "肩膀", Type: "Isolation", Tips: "針對前束，控制速度，不要用身體晃動借力。", IconColor: "bg-orange-200"},
	{ID: "face_pull", Name: "臉拉", Part: "肩膀", Type: "Cable", Tips: "針對後束與旋轉肌袖，將繩索拉向額頭，大臂外旋。", IconColor: "bg-orange-600"},
	{ID: "reverse_fly", Name: "反向飛鳥", Part: "肩膀", Type: "Isolation", Tips: "針對後束，手臂向兩側展開，感受肩胛骨後方收縮。", IconColor: "bg-amber-600"},
	{ID: "shrugs", Name: "啞鈴聳肩", Part: "肩膀", Type: "Isolation", Tips: "針對斜方肌上束，直上直下，不要旋轉肩膀。", IconColor: "bg-stone-600"},

	// 手臂
	{ID: "bicep_curl", Name: "二頭彎舉", Part: "手臂", Type: "Free Weight", Tips: "大臂夾緊身體兩側，不要藉力甩動。", IconColor: "bg-pink-500"},
	{ID: "hammer_curl", Name: "錘式彎舉", Part: "手臂", Type: "Free Weight", Tips: "掌心相對，針對肱肌與二頭肌長頭。", IconColor: "bg-pink-600"},
	{ID: "preacher_curl", Name: "牧師椅彎舉", Part: "手臂", Type: "Machine", Tips: "大臂完全貼合靠墊，避免借力，孤立二頭肌。", IconColor: "bg-pink-400"},
	{ID: "tricep_pushdown", Name: "三頭下壓", Part: "手臂", Type: "Cable", Tips: "手肘固定在身體兩側，完全伸直手臂。", IconColor: "bg-fuchsia-400"},
	{ID: "skull_crusher", Name: "仰臥臂屈伸", Part: "手臂", Type: "Free Weight", Tips: "保持大臂穩定，彎曲手肘將重量下放至額頭附近。", IconColor: "bg-fuchsia-500"},
	{ID: "overhead_extension", Name: "過頭三頭屈伸", Part: "手臂", Type: "Free Weight", Tips: "手肘朝上，下放啞鈴至頸後，感受三頭肌長頭拉伸。", IconColor: "bg-fuchsia-600"},
	{ID: "close_grip_bench", Name: "窄距臥推", Part: "手臂", Type: "Compound", Tips: "握距與肩同寬，手肘貼近身體，主攻三頭肌。", IconColor: "bg-fuchsia-700"},

	// 核心
	{ID: "plank", Name: "棒式", Part: "核心", Type: "Stability", Tips: "肘撐地，臀部收緊，身體呈一直線，不要塌腰。", IconColor: "bg-emerald-500"},
	{ID: "crunch", Name: "捲腹", Part: "核心", Type: "Isolation", Tips: "利用腹肌收縮將上背部捲離地面，下背貼地。", IconColor: "bg-emerald-400"},
	{ID: "leg_raise", Name: "懸垂舉腿", Part: "核心", Type: "Bodyweight", Tips: "骨盆後傾，利用下腹力量將腿抬起，避免晃動。", IconColor: "bg-emerald-600"},
	{ID: "russian_twist", Name: "俄羅斯轉體", Part: "核心", Type: "Bodyweight", Tips: "坐姿平衡，轉動軀幹而非只有手臂，感受側腹收縮。", IconColor: "bg-emerald-700"},
	{ID: "ab_wheel", Name: "健腹輪", Part: "核心", Type: "Bodyweight", Tips: "核心全程繃緊，下背不要凹陷，用腹肌力量拉回。", IconColor: "bg-teal-700"},
}

// ByID returns the catalog entry with the given id, or false.
func ByID(id string) (models.Exercise, bool) {
	for _, e := range Exercises {
		if e.ID == id {
			return e, true
		}
	}
	return models.Exercise{}, false
}

// ByPart returns all entries for a body part. An empty part returns the
// whole catalog.
func ByPart(part string) []models.Exercise {
	if part == "" {
		out := make([]models.Exercise, len(Exercises))
		copy(out, Exercises)
		return out
	}
	var out []models.Exercise
	for _, e := range Exercises {
		if e.Part == part {
			out = append(out, e)
		}
	}
	return out
}

// Parts returns the distinct body parts in catalog order.
func Parts() []string {
	var out []string
	seen := make(map[string]bool)
	for _, e := range Exercises {
		if !seen[e.Part] {
			seen[e.Part] = true
			out = append(out, e.Part)
		}
	}
	return out
}
