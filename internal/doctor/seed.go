package doctor

import "log"

var seedAvailabilitySlots = [][]string{
	{"Mon 9:00-12:00", "Thu 13:00-16:00"},
	{"Tue 10:00-13:00", "Fri 14:00-17:00"},
	{"Wed 9:00-12:00", "Fri 10:00-13:00"},
	{"Mon 14:00-17:00", "Wed 10:00-13:00"},
	{"Tue 9:00-12:00", "Thu 14:00-17:00"},
}

var seedExperiences = []string{"3 years", "5 years", "7 years", "10+ years", "15+ years", "20+ years"}

var featuredDoctors = []*Doctor{
	{
		Name:           "Dr. John Smith",
		Specialty:      "Cardiology",
		Availability:   []string{"Mon 9:00-12:00", "Thu 13:00-16:00"},
		Bio:            "Board-certified cardiologist with 10+ years of experience in treating heart conditions.",
		ImageURL:       "https://randomuser.me/api/portraits/men/32.jpg",
		Rating:         4.8,
		Experience:     "10+ years",
		Reviews:        124,
		Price:          1500,
		IsAvailableNow: true,
	},
	{
		Name:           "Dr. Emily Lee",
		Specialty:      "Pediatrics",
		Availability:   []string{"Tue 10:00-13:00", "Fri 14:00-17:00"},
		Bio:            "Compassionate pediatrician dedicated to providing excellent care for children of all ages.",
		ImageURL:       "https://randomuser.me/api/portraits/women/44.jpg",
		Rating:         4.9,
		Experience:     "7 years",
		Reviews:        98,
		Price:          1200,
		IsAvailableNow: false,
	},
	{
		Name:           "Dr. Raj Patel",
		Specialty:      "General Practice",
		Availability:   []string{"Wed 9:00-12:00", "Fri 10:00-13:00"},
		Bio:            "Experienced general practitioner focused on preventive care and managing chronic conditions.",
		ImageURL:       "https://randomuser.me/api/portraits/men/76.jpg",
		Rating:         4.7,
		Experience:     "15+ years",
		Reviews:        156,
		Price:          1000,
		IsAvailableNow: true,
	},
}

var additionalDoctors = []*Doctor{
	{Name: "Dr. Sarah Johnson", Specialty: "Neurology", Bio: "Neurologist specializing in headache disorders and neurodegenerative diseases.", ImageURL: "https://randomuser.me/api/portraits/women/67.jpg"},
	{Name: "Dr. Michael Chen", Specialty: "Dermatology", Bio: "Dermatologist with expertise in treating acne, eczema, and skin cancer screening.", ImageURL: "https://randomuser.me/api/portraits/men/52.jpg"},
	{Name: "Dr. Jessica Martinez", Specialty: "Psychiatry", Bio: "Psychiatrist specializing in anxiety disorders, depression, and ADHD management.", ImageURL: "https://randomuser.me/api/portraits/women/56.jpg"},
	{Name: "Dr. David Wilson", Specialty: "Orthopedics", Bio: "Orthopedic surgeon with a focus on sports injuries and joint replacements.", ImageURL: "https://randomuser.me/api/portraits/men/91.jpg"},
	{Name: "Dr. Lisa Patel", Specialty: "Gynecology", Bio: "OB/GYN providing comprehensive women's health services from adolescence through menopause.", ImageURL: "https://randomuser.me/api/portraits/women/17.jpg"},
	{Name: "Dr. Robert Thompson", Specialty: "Ophthalmology", Bio: "Ophthalmologist specializing in cataract surgery and glaucoma management.", ImageURL: "https://randomuser.me/api/portraits/men/55.jpg"},
	{Name: "Dr. Amanda Lee", Specialty: "Endocrinology", Bio: "Endocrinologist treating diabetes, thyroid disorders, and other hormonal conditions.", ImageURL: "https://randomuser.me/api/portraits/women/33.jpg"},
	{Name: "Dr. Daniel Kim", Specialty: "Cardiology", Bio: "Interventional cardiologist specializing in coronary artery disease and heart failure.", ImageURL: "https://randomuser.me/api/portraits/men/22.jpg"},
	{Name: "Dr. Sophia Rodriguez", Specialty: "Pediatrics", Bio: "Pediatrician with special interest in newborn care and childhood development.", ImageURL: "https://randomuser.me/api/portraits/women/83.jpg"},
	{Name: "Dr. James Williams", Specialty: "General Practice", Bio: "Family physician providing comprehensive care for patients of all ages.", ImageURL: "https://randomuser.me/api/portraits/men/39.jpg"},
	{Name: "Dr. Anna Garcia", Specialty: "Neurology", Bio: "Neurologist specializing in epilepsy, multiple sclerosis, and stroke recovery.", ImageURL: "https://randomuser.me/api/portraits/women/26.jpg"},
	{Name: "Dr. Thomas Brown", Specialty: "Dermatology", Bio: "Dermatologist focused on skin cancer prevention and cosmetic dermatology.", ImageURL: "https://randomuser.me/api/portraits/men/62.jpg"},
	{Name: "Dr. Maria Sanchez", Specialty: "Psychiatry", Bio: "Child and adolescent psychiatrist specializing in trauma and developmental disorders.", ImageURL: "https://randomuser.me/api/portraits/women/90.jpg"},
	{Name: "Dr. Christopher Jones", Specialty: "Orthopedics", Bio: "Orthopedic surgeon specializing in minimally invasive procedures and sports medicine.", ImageURL: "https://randomuser.me/api/portraits/men/41.jpg"},
	{Name: "Dr. Elizabeth Park", Specialty: "Gynecology", Bio: "Gynecologist specializing in endometriosis, PCOS, and minimally invasive surgery.", ImageURL: "https://randomuser.me/api/portraits/women/54.jpg"},
	{Name: "Dr. Kevin Nguyen", Specialty: "Ophthalmology", Bio: "Ophthalmologist specializing in retinal diseases and diabetic eye care.", ImageURL: "https://randomuser.me/api/portraits/men/68.jpg"},
	{Name: "Dr. Rachel Green", Specialty: "Endocrinology", Bio: "Endocrinologist with expertise in weight management and metabolic disorders.", ImageURL: "https://randomuser.me/api/portraits/women/37.jpg"},
	{Name: "Dr. Omar Hassan", Specialty: "Cardiology", Bio: "Non-invasive cardiologist specializing in preventive cardiology and heart disease in women.", ImageURL: "https://randomuser.me/api/portraits/men/85.jpg"},
	{Name: "Dr. Tina Wong", Specialty: "Pediatrics", Bio: "Pediatrician specializing in childhood asthma, allergies, and immunological disorders.", ImageURL: "https://randomuser.me/api/portraits/women/27.jpg"},
	{Name: "Dr. Patrick Murphy", Specialty: "General Practice", Bio: "Family physician with a focus on geriatric care and chronic disease management.", ImageURL: "https://randomuser.me/api/portraits/men/45.jpg"},
	{Name: "Dr. Jasmine Sharma", Specialty: "Neurology", Bio: "Neurologist specializing in movement disorders and Parkinson's disease.", ImageURL: "https://randomuser.me/api/portraits/women/75.jpg"},
	{Name: "Dr. Alexander Davis", Specialty: "Dermatology", Bio: "Pediatric dermatologist treating common and rare skin conditions in children.", ImageURL: "https://randomuser.me/api/portraits/men/15.jpg"},
	{Name: "Dr. Rebecca Mills", Specialty: "Psychiatry", Bio: "Psychiatrist specializing in mood disorders and cognitive behavioral therapy.", ImageURL: "https://randomuser.me/api/portraits/women/46.jpg"},
	{Name: "Dr. Jordan Taylor", Specialty: "Orthopedics", Bio: "Orthopedic surgeon specializing in hand and upper extremity conditions.", ImageURL: "https://randomuser.me/api/portraits/men/24.jpg"},
	{Name: "Dr. Olivia Foster", Specialty: "Gynecology", Bio: "OB/GYN with a focus on high-risk pregnancies and fertility issues.", ImageURL: "https://randomuser.me/api/portraits/women/63.jpg"},
	{Name: "Dr. Nathan Campbell", Specialty: "Ophthalmology", Bio: "Ophthalmologist specializing in pediatric eye conditions and strabismus.", ImageURL: "https://randomuser.me/api/portraits/men/77.jpg"},
	{Name: "Dr. Samantha Wright", Specialty: "Endocrinology", Bio: "Endocrinologist specializing in thyroid disorders and adrenal conditions.", ImageURL: "https://randomuser.me/api/portraits/women/12.jpg"},
}

// Seed populates the directory on first boot. An already-populated
// repository is left untouched.
func Seed(repo Repository) error {
	count, err := repo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		log.Printf("DOCTOR_SEED_SKIPPED existing=%d", count)
		return nil
	}

	return seedAll(repo)
}

// Reseed wipes the directory and reloads the seed set. Admin-only; used
// when the seed data itself changes (pricing, bios).
func Reseed(repo Repository) error {
	if err := repo.DeleteAll(); err != nil {
		return err
	}
	log.Println("DOCTOR_RESEED directory cleared")
	return seedAll(repo)
}

func seedAll(repo Repository) error {
	for _, d := range featuredDoctors {
		doc := *d
		if err := repo.Save(&doc); err != nil {
			return err
		}
	}

	for i, d := range additionalDoctors {
		doc := *d
		doc.Availability = seedAvailabilitySlots[i%len(seedAvailabilitySlots)]
		doc.Rating = 4.0 + float64(i%10)/10
		doc.Experience = seedExperiences[i%len(seedExperiences)]
		doc.Reviews = 50 + (i*37)%151
		doc.Price = 800 + (i*97)%1201
		doc.IsAvailableNow = i%3 == 2
		if err := repo.Save(&doc); err != nil {
			return err
		}
	}

	total := len(featuredDoctors) + len(additionalDoctors)
	log.Printf("DOCTOR_SEED_COMPLETE total=%d", total)
	return nil
}
