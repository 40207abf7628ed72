package templates

import "github.com/mindstep/aiplan/internal/usertype"

// commonTracking returns a fresh copy of the tracking text shared by
// several user types.
func commonTracking() []string {
	return []string{
		"数据监测：系统会每日记录任务完成率并推送日报；每周生成能力变化曲线；每3个月生成阶段报告。",
		"迭代规则：每天更新任务，同一个训练任务连续出现不超过3天。",
	}
}

// Default returns the built-in template table.
func Default() *Table {
	return &Table{entries: map[usertype.UserType]Template{
		usertype.Advantage: {
			Overview: "为了让训练更高效、更贴合孩子的成长节奏，我们结合本阶段的认知训练数据与优势倾向，" +
				"为孩子生成了专属的 AI 训练方案。这份方案精准匹配宝贝的能力发展节奏，能更有针对性地助力孩子提升认知能力。" +
				"建议您仔细阅读，和我们一起助力孩子认知成长。",
			TrainingPlanIntro: "训练任务将围绕孩子优势倾向展开，以下是 AI 生成的一周专属训练计划，" +
				"通过强化优势、带动均衡，精准匹配孩子当前的能力水平与发展需求。",
			HomeAdvice: []string{
				"生活功能场景：听新闻后复述4-5个信息点，锻炼孩子记忆联结能力。",
				"家庭延伸训练：每日可增加10分钟“家庭寻宝游戏”（锻炼感知觉）或“时间管理小任务”（锻炼执行控制），强化能力迁移。",
				"正向反馈技巧：当孩子完成跨场景任务时，具体表扬其能力表现（如“你刚才在整理玩具时，按颜色和形状分类，执行控制能力用得真好！”），强化优势能力的应用意识。",
			},
			TrackingAndAdjustment: []string{
				"数据监测：系统会每日记录任务完成率并推送日报；每周生成能力变化曲线，对比感知觉、执行控制、注意力、记忆力的稳定性与训练效果；每3个月生成阶段报告，评估阶段训练效果及孩子生活行为改善情况。",
				"迭代规则：每天更新任务，同一个训练任务连续出现不超过3天。",
			},
		},
		usertype.Potential: {
			Overview: "为保障认知训练的高效性与适配性，贴合孩子的个性化成长节奏，我们依托本阶段训练数据，" +
				"结合孩子的认知潜能倾向，为其定制专属 AI 训练方案。方案精准匹配宝贝的认知发展节奏，" +
				"可针对性助力认知能力提升，建议您详细阅读。",
			TrainingPlanIntro: "为了让训练效果最大化，我们将训练计划拆解为两大模块：认知潜能拓展聚焦强化孩子的潜能，" +
				"能力均衡训练则巩固基础、补齐短板。以下为 AI 推荐的一周训练安排。",
			HomeAdvice: []string{
				"生活功能场景：玩“听记数字”游戏（家长报数字串，孩子复述，逐步增加长度），锻炼孩子信息加工速度。",
				"家庭延伸训练：玩“干扰游戏”（家长制造轻微噪音，孩子专注拼图）。",
				"正向反馈技巧：和孩子一起讨论“分心时如何拉回注意力”（如捏耳垂、默念“专注”），陪孩子一起想办法做到。",
			},
			TrackingAndAdjustment: commonTracking(),
		},
		usertype.Special: {
			Overview: "本方案结合孩子本阶段训练数据与专项优势特征制定。通过优势能力深化、巩固基础能力，" +
				"将实验室得分转化为临床功能改善，最终提升孩子的生活能力表现。建议您详细阅读。",
			TrainingPlanIntro: "基于孩子的专项优势能力，我们以核心能力强化 + 关联能力联动提升为原则，" +
				"为孩子制定了周度训练任务方案。",
			HomeAdvice: []string{
				"生活功能场景：分心时在本子上记录“刚才想了什么”，事后一起分析干扰源。",
				"家庭环境打造：为孩子创建低干扰学习环境，减少视觉与听觉分心源，背景噪音控制在 40-50 分贝。",
			},
			TrackingAndAdjustment: commonTracking(),
		},
		usertype.Growth: {
			Overview: "为了帮助孩子扭转能力波动下降的趋势，我们结合本阶段训练数据与能力现状，为孩子生成了专属的 AI 训练方案。" +
				"方案以稳定能力、巩固基础、逐步提升为核心，帮助孩子重拾训练信心，稳步提升认知能力。" +
				"建议您仔细阅读，陪伴孩子走出波动期。",
			TrainingPlanIntro: "本阶段训练以“低压力、高成功体验”为原则，通过基础稳控 + 阶梯式提升，逐步改善能力表现。",
			HomeAdvice: []string{
				"生活功能场景：听新闻后复述4-5个信息点，锻炼孩子记忆联结能力。",
				"家庭延伸训练：每日增加10分钟“家庭寻宝游戏”或“时间管理小任务”，强化能力迁移。",
				"正向反馈技巧：具体表扬孩子的努力过程，而不仅是结果，增强信心。",
			},
			TrackingAndAdjustment: commonTracking(),
		},
	}}
}
